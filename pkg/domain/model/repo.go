package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagsync/pkg/domain/types"
)

var repoRefPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// RepoRef identifies a GitHub repository as "owner/name".
type RepoRef string

// Validate checks that the reference is exactly two non-empty segments of
// word, dot or hyphen characters joined by a single slash.
func (x RepoRef) Validate() error {
	if !repoRefPattern.MatchString(string(x)) {
		return goerr.New("invalid repository format, expected 'owner/name'",
			goerr.T(types.TagInvalidInput), goerr.V("repo", string(x)))
	}
	return nil
}

// Owner returns the segment before the slash.
func (x RepoRef) Owner() string {
	owner, _, _ := strings.Cut(string(x), "/")
	return owner
}

// Name returns the segment after the slash.
func (x RepoRef) Name() string {
	_, name, _ := strings.Cut(string(x), "/")
	return name
}

func (x RepoRef) String() string {
	return string(x)
}

// ReleaseURL returns the public release page for the given tag.
func (x RepoRef) ReleaseURL(tag Tag) string {
	return fmt.Sprintf("https://github.com/%s/releases/tag/%s", x, tag)
}
