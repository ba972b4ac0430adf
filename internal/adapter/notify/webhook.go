package notify

import (
	"context"
	"net/http"
	"time"
)

// Webhook posts JSON payloads to Slack and Discord incoming webhooks.
type Webhook struct {
	client *http.Client
}

// NewWebhook creates a Webhook sender. A nil client gets a default one.
func NewWebhook(client *http.Client) *Webhook {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Webhook{client: client}
}

// Post sends payload to url. service names the channel in errors.
func (w *Webhook) Post(ctx context.Context, service, url string, payload any) error {
	return postJSON(ctx, w.client, service, url, payload, nil)
}
