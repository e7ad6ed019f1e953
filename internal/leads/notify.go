package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Notifier forwards leads to an external webhook (CRM, Slack, Zapier). A
// zero URL disables forwarding. Delivery is best effort: failures are
// logged and never surface to the visitor.
type Notifier struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

// NewNotifier returns a Notifier posting to webhookURL. Pass an empty URL
// to disable delivery.
func NewNotifier(webhookURL string, log *zap.Logger) *Notifier {
	return &Notifier{
		url: webhookURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		log: log,
	}
}

// Notify posts the lead as JSON to the configured webhook. It returns an
// error for callers that want to record delivery state, but callers should
// not fail the request on it.
func (n *Notifier) Notify(ctx context.Context, lead Lead) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn("lead webhook delivery failed",
			zap.String("lead_id", lead.ID),
			zap.Error(err),
		)
		return fmt.Errorf("deliver lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.Warn("lead webhook rejected",
			zap.String("lead_id", lead.ID),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("deliver lead: status %d", resp.StatusCode)
	}

	n.log.Info("lead forwarded",
		zap.String("lead_id", lead.ID),
		zap.String("source_path", lead.SourcePath),
	)
	return nil
}
