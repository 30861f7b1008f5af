package config

import "github.com/urfave/cli/v3"

// Notify holds notification configuration
type Notify struct {
	WebhookURL string
}

// Flags returns CLI flags for notification configuration
func (c *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook URL for notifications (optional)",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("TAGSYNC_SLACK_WEBHOOK"),
		},
	}
}
