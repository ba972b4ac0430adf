package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/akinloluwami/formdrop/internal/config"
)

const defaultResendURL = "https://api.resend.com/emails"

// Message is a single HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer sends email through the Resend HTTP API when an API key is
// configured and through SMTP otherwise.
type Mailer struct {
	cfg       config.MailConfig
	client    *http.Client
	resendURL string
}

// MailerOption customizes a Mailer.
type MailerOption func(*Mailer)

// WithResendURL overrides the Resend endpoint.
func WithResendURL(url string) MailerOption {
	return func(m *Mailer) { m.resendURL = url }
}

// WithHTTPClient sets the client used for the Resend API.
func WithHTTPClient(c *http.Client) MailerOption {
	return func(m *Mailer) { m.client = c }
}

// NewMailer creates a Mailer from cfg.
func NewMailer(cfg config.MailConfig, opts ...MailerOption) *Mailer {
	m := &Mailer{
		cfg:       cfg,
		client:    &http.Client{Timeout: 15 * time.Second},
		resendURL: defaultResendURL,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Send delivers msg.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("mail: no recipients")
	}
	if m.cfg.UseResend() {
		return m.sendResend(ctx, msg)
	}
	return m.sendSMTP(ctx, msg)
}

func (m *Mailer) sendResend(ctx context.Context, msg Message) error {
	body := map[string]any{
		"from":    m.cfg.From,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTML,
	}
	if msg.ReplyTo != "" {
		body["reply_to"] = msg.ReplyTo
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+m.cfg.ResendAPIKey)
	return postJSON(ctx, m.client, "resend", m.resendURL, body, header)
}

func (m *Mailer) sendSMTP(ctx context.Context, msg Message) error {
	from, err := mail.ParseAddress(m.cfg.From)
	if err != nil {
		return fmt.Errorf("mail: invalid from address: %w", err)
	}

	addr := net.JoinHostPort(m.cfg.SMTPHost, strconv.Itoa(m.cfg.SMTPPort))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp: dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp: handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(nil); err != nil {
			return fmt.Errorf("smtp: starttls: %w", err)
		}
	}
	if m.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp: auth: %w", err)
		}
	}

	if err := c.Mail(from.Address); err != nil {
		return fmt.Errorf("smtp: mail from: %w", err)
	}
	for _, to := range msg.To {
		if err := c.Rcpt(to); err != nil {
			return fmt.Errorf("smtp: rcpt %s: %w", to, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp: data: %w", err)
	}
	if _, err := w.Write(m.buildMIME(msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: data close: %w", err)
	}
	return c.Quit()
}

func (m *Mailer) buildMIME(msg Message) []byte {
	var b bytes.Buffer
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return b.Bytes()
}
