package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tagsync/pkg/domain/interfaces"
	"github.com/m-mizutani/tagsync/pkg/domain/model"
)

type syncUseCase struct {
	github   interfaces.GitHubClient
	notifier interfaces.Notifier
}

// NewSync creates a new instance of SyncUseCase
func NewSync(githubClient interfaces.GitHubClient, notifier interfaces.Notifier) interfaces.SyncUseCase {
	return &syncUseCase{
		github:   githubClient,
		notifier: notifier,
	}
}

// Sync runs the workflow: validate inputs, fetch both latest tags, compare,
// and create a release in the local repository when the target moved ahead.
// Every failure path attempts a notification before returning; notification
// failures never affect the result.
func (uc *syncUseCase) Sync(ctx context.Context, req *model.SyncRequest) (*model.SyncResult, error) {
	logger := ctxlog.From(ctx)

	if err := req.TargetRepo.Validate(); err != nil {
		return nil, uc.fail(ctx, err)
	}
	if err := req.LocalRepo.Validate(); err != nil {
		return nil, uc.fail(ctx, err)
	}

	targetTag, err := uc.fetchLatestTag(ctx, req.TargetRepo)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}

	localTag, err := uc.fetchLatestTag(ctx, req.LocalRepo)
	if err != nil {
		return nil, uc.fail(ctx, err)
	}

	if !model.NeedsUpdate(targetTag, localTag) {
		logger.Info("tags are identical, no update needed",
			"target_repo", req.TargetRepo,
			"local_repo", req.LocalRepo,
			"tag", localTag,
		)
		uc.notifier.Notify(ctx, fmt.Sprintf(
			"No update needed for '%s': already at %s.", req.LocalRepo, localTag))

		return &model.SyncResult{
			Outcome:   model.OutcomeUpToDate,
			TargetTag: targetTag,
			LocalTag:  localTag,
		}, nil
	}

	msg := fmt.Sprintf("Update needed for '%s'. Newest tag from '%s' is %s.",
		req.LocalRepo, req.TargetRepo, targetTag)
	logger.Warn(msg)
	uc.notifier.Notify(ctx, msg)

	logger.Info("creating release",
		"local_repo", req.LocalRepo,
		"tag", targetTag,
		"base_branch", req.BaseBranch,
	)
	release, err := uc.github.CreateRelease(ctx, &model.ReleaseRequest{
		Repo:         req.LocalRepo,
		Tag:          targetTag,
		Body:         releaseBody(req.TargetRepo, targetTag),
		TargetBranch: req.BaseBranch,
	})
	if err != nil {
		return nil, uc.fail(ctx, err)
	}

	success := fmt.Sprintf("Successfully created release '%s' in '%s'.",
		targetTag, req.LocalRepo)
	logger.Info(success, "release_url", release.HTMLURL)
	uc.notifier.Notify(ctx, success)

	return &model.SyncResult{
		Outcome:   model.OutcomeReleased,
		TargetTag: targetTag,
		LocalTag:  localTag,
		Release:   release,
	}, nil
}

// fetchLatestTag fetches the newest tag of a repository and checks that it
// matches the expected version format.
func (uc *syncUseCase) fetchLatestTag(ctx context.Context, repo model.RepoRef) (model.Tag, error) {
	logger := ctxlog.From(ctx)

	logger.Info("fetching latest tag", "repo", repo)
	tag, err := uc.github.LatestTag(ctx, repo)
	if err != nil {
		return "", err
	}

	if err := tag.Validate(); err != nil {
		return "", goerr.Wrap(err, "latest tag does not match the expected format",
			goerr.V("repo", repo), goerr.V("tag", tag))
	}

	logger.Info("found latest tag", "repo", repo, "tag", tag)
	return tag, nil
}

// fail sends a best-effort failure notification and passes the error
// through unchanged.
func (uc *syncUseCase) fail(ctx context.Context, err error) error {
	uc.notifier.Notify(ctx, "ERROR: "+err.Error())
	return err
}

func releaseBody(target model.RepoRef, tag model.Tag) string {
	return "This release was automatically generated.\n" +
		"It mirrors the upstream changes from " + target.ReleaseURL(tag)
}
