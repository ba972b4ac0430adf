package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/domain"
)

const (
	discordMaxFields     = 25
	discordMaxFieldValue = 1024
	slackMaxSectionText  = 3000
	submittedAtColumn    = "Submitted At"
)

// field is one payload entry rendered as text.
type field struct {
	Name  string
	Value string
}

// sortedFields renders the payload in key order so every channel shows
// the same layout.
func sortedFields(payload map[string]any) []field {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]field, 0, len(keys))
	for _, k := range keys {
		out = append(out, field{Name: k, Value: formatValue(payload[k])})
	}
	return out
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, float64, float32, int, int64, json.Number:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// truncate cuts s to at most n bytes on a rune boundary, marking the cut
// with an ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - len("…")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

var emailTpl = template.Must(template.New("submission").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">New submission: {{.FormName}}</h2>
  <table style="width:100%;border-collapse:collapse">
  {{range .Fields}}
    <tr>
      <td style="padding:6px 8px;border-bottom:1px solid #eee;color:#666;vertical-align:top"><strong>{{.Name}}</strong></td>
      <td style="padding:6px 8px;border-bottom:1px solid #eee;color:#111;white-space:pre-wrap">{{.Value}}</td>
    </tr>
  {{end}}
  </table>
  <p style="color:#999;font-size:12px">Received {{.ReceivedAt}} · submission {{.SubmissionID}}</p>
</div>
</body>
</html>`))

func emailMessage(form *domain.Form, sub *domain.Submission, to string) (notify.Message, error) {
	var buf bytes.Buffer
	err := emailTpl.Execute(&buf, struct {
		FormName     string
		Fields       []field
		ReceivedAt   string
		SubmissionID string
	}{form.Name, sortedFields(sub.Payload), sub.CreatedAt.UTC().Format(time.RFC1123), sub.ID.String()})
	if err != nil {
		return notify.Message{}, fmt.Errorf("render email: %w", err)
	}

	msg := notify.Message{
		To:      []string{to},
		Subject: "New submission: " + form.Name,
		HTML:    buf.String(),
	}
	if email, ok := sub.Payload["email"].(string); ok && strings.Contains(email, "@") {
		msg.ReplyTo = email
	}
	return msg, nil
}

var slackEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func slackPayload(form *domain.Form, sub *domain.Submission) map[string]any {
	var lines strings.Builder
	for _, f := range sortedFields(sub.Payload) {
		fmt.Fprintf(&lines, "*%s:* %s\n", slackEscaper.Replace(f.Name), slackEscaper.Replace(f.Value))
	}
	title := "New submission on " + form.Name

	return map[string]any{
		"text": title,
		"blocks": []map[string]any{
			{
				"type": "header",
				"text": map[string]any{"type": "plain_text", "text": truncate(title, 150)},
			},
			{
				"type": "section",
				"text": map[string]any{"type": "mrkdwn", "text": truncate(lines.String(), slackMaxSectionText)},
			},
			{
				"type": "context",
				"elements": []map[string]any{
					{"type": "mrkdwn", "text": "Submission " + sub.ID.String()},
				},
			},
		},
	}
}

func discordPayload(form *domain.Form, sub *domain.Submission) map[string]any {
	fields := sortedFields(sub.Payload)
	if len(fields) > discordMaxFields {
		fields = fields[:discordMaxFields]
	}

	embedFields := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		embedFields = append(embedFields, map[string]any{
			"name":   truncate(f.Name, 256),
			"value":  truncate(value, discordMaxFieldValue),
			"inline": false,
		})
	}

	return map[string]any{
		"content": "New submission on " + form.Name,
		"embeds": []map[string]any{{
			"title":     form.Name,
			"fields":    embedFields,
			"timestamp": sub.CreatedAt.UTC().Format(time.RFC3339),
			"footer":    map[string]any{"text": sub.ID.String()},
		}},
	}
}

// sheetsColumns is the submission time followed by the payload in key
// order. The Sheets client aligns them to the sheet's header by name.
func sheetsColumns(sub *domain.Submission) []notify.SheetColumn {
	fields := sortedFields(sub.Payload)
	cols := make([]notify.SheetColumn, 0, len(fields)+1)
	cols = append(cols, notify.SheetColumn{Name: submittedAtColumn, Value: sub.CreatedAt.UTC().Format(time.RFC3339)})
	for _, f := range fields {
		cols = append(cols, notify.SheetColumn{Name: f.Name, Value: f.Value})
	}
	return cols
}

func airtableFields(sub *domain.Submission) map[string]any {
	out := make(map[string]any, len(sub.Payload)+1)
	for _, f := range sortedFields(sub.Payload) {
		out[f.Name] = f.Value
	}
	out[submittedAtColumn] = sub.CreatedAt.UTC().Format(time.RFC3339)
	return out
}
