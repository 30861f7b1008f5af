package notify

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/tagsync/pkg/domain/interfaces"
	"github.com/slack-go/slack"
)

const webhookTimeout = 10 * time.Second

type slackNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewSlack creates a Notifier posting to a Slack incoming webhook. An empty
// webhookURL turns every Notify call into a no-op.
func NewSlack(webhookURL string) interfaces.Notifier {
	return &slackNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: webhookTimeout},
	}
}

// Notify delivers msg to the webhook. Losing a notification is not a reason
// to abort the run: failures are logged at Warn and swallowed.
func (x *slackNotifier) Notify(ctx context.Context, msg string) {
	if x.webhookURL == "" {
		return
	}

	logger := ctxlog.From(ctx)
	err := slack.PostWebhookCustomHTTPContext(ctx, x.webhookURL, x.httpClient, &slack.WebhookMessage{
		Text: msg,
	})
	if err != nil {
		logger.Warn("failed to send Slack notification", "error", err)
		return
	}

	logger.Debug("sent Slack notification")
}
