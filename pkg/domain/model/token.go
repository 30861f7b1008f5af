package model

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagsync/pkg/domain/types"
)

// Matches GitHub personal access tokens: classic (ghp_ + 36 chars) and
// fine-grained (github_pat_ + 22 chars + "_" + 59 chars). The enumeration is
// closed: legacy or future token shapes are rejected.
// https://gist.github.com/magnetikonline/073afe7909ffdd6f10ef06a00bc3bc88
var tokenPattern = regexp.MustCompile(`^(ghp_[a-zA-Z0-9]{36}|github_pat_[a-zA-Z0-9]{22}_[a-zA-Z0-9]{59})$`)

// Token is a GitHub personal access token. The raw value is redacted from
// log output by type (see cli/config.Logger).
type Token string

// Validate checks that the token matches one of the published token shapes.
func (x Token) Validate() error {
	if !tokenPattern.MatchString(string(x)) {
		return goerr.New("github token does not match a known token format",
			goerr.T(types.TagInvalidInput))
	}
	return nil
}
