package notify

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAirtableURL = "https://api.airtable.com/v0"

// Airtable creates records through the Airtable REST API.
type Airtable struct {
	client  *http.Client
	baseURL string
}

// NewAirtable creates an Airtable client. An empty baseURL uses the public API.
func NewAirtable(client *http.Client, baseURL string) *Airtable {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultAirtableURL
	}
	return &Airtable{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// CreateRecord inserts one record with fields into baseID/table.
// typecast lets Airtable coerce string values into the column types.
func (a *Airtable) CreateRecord(ctx context.Context, apiKey, baseID, table string, fields map[string]any) error {
	endpoint := a.baseURL + "/" + url.PathEscape(baseID) + "/" + url.PathEscape(table)

	body := map[string]any{
		"records":  []map[string]any{{"fields": fields}},
		"typecast": true,
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+apiKey)
	return postJSON(ctx, a.client, "airtable", endpoint, body, header)
}
