package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagsync/pkg/domain/interfaces"
	"github.com/m-mizutani/tagsync/pkg/domain/model"
	"github.com/m-mizutani/tagsync/pkg/domain/types"
)

// No user-facing cancellation exists, so every outbound call is bounded by
// the client timeout.
const requestTimeout = 30 * time.Second

type client struct {
	gh *github.Client
}

// Option configures the client at construction time.
type Option func(*client) error

// WithBaseURL overrides the API base URL. Used for GitHub Enterprise and
// tests.
func WithBaseURL(rawURL string) Option {
	return func(c *client) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return goerr.Wrap(err, "invalid API base URL", goerr.V("url", rawURL))
		}
		c.gh.BaseURL = u
		return nil
	}
}

// New creates a GitHub client authenticated with a personal access token.
// The token is validated here; a malformed token never reaches the API.
func New(token model.Token, opts ...Option) (interfaces.GitHubClient, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	gh := github.NewClient(&http.Client{Timeout: requestTimeout}).
		WithAuthToken(string(token))

	c := &client{gh: gh}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LatestTag fetches the tag refs of the repository and returns the newest
// one. The API returns refs in chronological order, oldest first.
func (c *client) LatestTag(ctx context.Context, repo model.RepoRef) (model.Tag, error) {
	refs, _, err := c.gh.Git.ListMatchingRefs(ctx, repo.Owner(), repo.Name(), &github.ReferenceListOptions{
		Ref: "tags",
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to list tag refs",
			goerr.T(types.TagTransport), goerr.V("repo", repo))
	}

	if len(refs) == 0 {
		return "", goerr.New("no tags found in repository",
			goerr.T(types.TagNoTags), goerr.V("repo", repo))
	}

	ref := refs[len(refs)-1].GetRef()
	return model.Tag(strings.TrimPrefix(ref, "refs/tags/")), nil
}

// CreateRelease creates a release named after req.Tag, pointing at req.Tag,
// anchored to req.TargetBranch. A non-2xx response from GitHub is reported
// as a release_rejected error with the status code and provider message, not
// as a crash.
func (c *client) CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.Release, error) {
	rel, resp, err := c.gh.Repositories.CreateRelease(ctx, req.Repo.Owner(), req.Repo.Name(), &github.RepositoryRelease{
		TagName:         github.Ptr(string(req.Tag)),
		Name:            github.Ptr(string(req.Tag)),
		Body:            github.Ptr(req.Body),
		TargetCommitish: github.Ptr(req.TargetBranch),
	})
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) {
			return nil, goerr.Wrap(err, "github rejected the release",
				goerr.T(types.TagReleaseRejected),
				goerr.V("repo", req.Repo),
				goerr.V("tag", req.Tag),
				goerr.V("status", ghErr.Response.StatusCode),
				goerr.V("message", ghErr.Message))
		}
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.T(types.TagTransport),
			goerr.V("repo", req.Repo), goerr.V("tag", req.Tag))
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, goerr.New("unexpected status for release creation",
			goerr.T(types.TagReleaseRejected),
			goerr.V("repo", req.Repo), goerr.V("tag", req.Tag),
			goerr.V("status", resp.StatusCode))
	}

	return &model.Release{
		ID:      rel.GetID(),
		TagName: model.Tag(rel.GetTagName()),
		Name:    rel.GetName(),
		HTMLURL: rel.GetHTMLURL(),
	}, nil
}
