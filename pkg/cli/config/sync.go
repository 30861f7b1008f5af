package config

import "github.com/urfave/cli/v3"

// Sync holds repository configuration for the sync command
type Sync struct {
	TargetRepo string
	LocalRepo  string
	BaseBranch string
}

// Flags returns CLI flags for sync configuration
func (c *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target-repo",
			Usage:       "The target (upstream) repository in 'owner/name' format",
			Required:    true,
			Destination: &c.TargetRepo,
			Sources:     cli.EnvVars("TAGSYNC_TARGET_REPO"),
		},
		&cli.StringFlag{
			Name:        "local-repo",
			Usage:       "The local (downstream) repository to update, in 'owner/name' format",
			Required:    true,
			Destination: &c.LocalRepo,
			Sources:     cli.EnvVars("TAGSYNC_LOCAL_REPO"),
		},
		&cli.StringFlag{
			Name:        "base-branch",
			Usage:       "Branch the release tag is created from",
			Value:       "main",
			Destination: &c.BaseBranch,
			Sources:     cli.EnvVars("TAGSYNC_BASE_BRANCH"),
		},
	}
}
