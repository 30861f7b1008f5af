package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagsync/pkg/domain/types"
)

// Anchored on both ends: trailing garbage after the patch digits is invalid.
var tagPattern = regexp.MustCompile(`^\d{4}\.\d{2}(\.\d+)?$`)

// Tag is a version tag in calendar form: "YYYY.MM" or "YYYY.MM.patch".
type Tag string

// Validate checks that the tag matches the calendar version format.
func (x Tag) Validate() error {
	if !tagPattern.MatchString(string(x)) {
		return goerr.New("tag does not match the YYYY.MM[.patch] format",
			goerr.T(types.TagInvalidInput), goerr.V("tag", string(x)))
	}
	return nil
}

func (x Tag) String() string {
	return string(x)
}

// NeedsUpdate reports whether the local repository should be updated to the
// target's tag. The policy is strict string inequality: any difference means
// an update, including a target that is chronologically older than the
// local tag. Tags are never parsed into ordered (year, month, patch) tuples.
func NeedsUpdate(target, local Tag) bool {
	return target != local
}
