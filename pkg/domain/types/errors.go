package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures so callers can check the kind of a failure
// without parsing its message.
var (
	// TagInvalidInput marks a malformed credential, repository reference or
	// version tag.
	TagInvalidInput = goerr.NewTag("invalid_input")

	// TagNoTags marks a repository that has no tags at all. Distinct from
	// TagInvalidInput, which covers tags that exist but have an unexpected
	// shape.
	TagNoTags = goerr.NewTag("no_tags")

	// TagTransport marks a network failure or unexpected response while
	// talking to the GitHub API.
	TagTransport = goerr.NewTag("transport")

	// TagReleaseRejected marks a release creation that GitHub declined with
	// a non-2xx response. The error carries the status code and the
	// provider's message for diagnosis.
	TagReleaseRejected = goerr.NewTag("release_rejected")
)
