package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/tagsync/pkg/cli/config"
	"github.com/m-mizutani/tagsync/pkg/domain/model"
	githubinfra "github.com/m-mizutani/tagsync/pkg/infra/github"
	"github.com/m-mizutani/tagsync/pkg/infra/notify"
	"github.com/m-mizutani/tagsync/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var (
		githubCfg config.GitHub
		notifyCfg config.Notify
		syncCfg   config.Sync
	)

	flags := append(githubCfg.Flags(), notifyCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:    "sync",
		Aliases: []string{"s"},
		Usage:   "Compare latest tags and create a release in the local repository if needed",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			notifier := notify.NewSlack(notifyCfg.WebhookURL)

			var opts []githubinfra.Option
			if githubCfg.BaseURL != "" {
				opts = append(opts, githubinfra.WithBaseURL(githubCfg.BaseURL))
			}

			// The notifier exists before the client, so credential failures
			// are reported through it as well.
			client, err := githubinfra.New(model.Token(githubCfg.Token), opts...)
			if err != nil {
				notifier.Notify(ctx, "ERROR: "+err.Error())
				return err
			}

			uc := usecase.NewSync(client, notifier)
			result, err := uc.Sync(ctx, &model.SyncRequest{
				TargetRepo: model.RepoRef(syncCfg.TargetRepo),
				LocalRepo:  model.RepoRef(syncCfg.LocalRepo),
				BaseBranch: syncCfg.BaseBranch,
			})
			if err != nil {
				return err
			}

			logger.Info("sync completed",
				slog.String("outcome", string(result.Outcome)),
				slog.String("target_tag", string(result.TargetTag)),
				slog.String("local_tag", string(result.LocalTag)),
			)
			return nil
		},
	}
}
