package interfaces

import (
	"context"

	"github.com/m-mizutani/tagsync/pkg/domain/model"
)

// GitHubClient defines operations for interacting with the GitHub API
type GitHubClient interface {
	// LatestTag returns the newest tag of the repository. It fails with a
	// no_tags error when the repository has no tags, and a transport error
	// on network failure or an unexpected response.
	LatestTag(ctx context.Context, repo model.RepoRef) (model.Tag, error)

	// CreateRelease creates a release named after the request's tag. A
	// rejection by GitHub is returned as a release_rejected error carrying
	// the status code and provider message.
	CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.Release, error)
}
