package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Token   string
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token for authentication",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("TAGSYNC_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("TAGSYNC_GITHUB_API"),
		},
	}
}
