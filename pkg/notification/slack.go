package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Rice-Bikes/ricebikesbackend/pkg/models"
)

const slackRequestTimeout = 10 * time.Second

// SlackNotifier posts notification messages to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

func NewSlackNotifier(webhookURL string, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: slackRequestTimeout},
		logger:     logger,
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

func (n *SlackNotifier) Send(ctx context.Context, request models.NotificationRequest) error {
	payload, err := json.Marshal(slackPayload{Text: request.Message})
	if err != nil {
		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post slack notification: %w", err)
	}

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			n.logger.ErrorContext(ctx, "failed to close slack response body", "error", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	n.logger.DebugContext(ctx, "Slack notification delivered",
		"kind", request.Kind,
		"transaction_num", request.TransactionNum,
	)

	return nil
}
