package verification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/adapter/notify"
	"github.com/akinloluwami/formdrop/internal/domain"
	"github.com/akinloluwami/formdrop/pkg/ctxutil"
)

var verifyTpl = template.Must(template.New("verify").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">Confirm your email</h2>
  <p>You were added as a notification recipient for the form <strong>{{.FormName}}</strong>.</p>
  <p style="margin-top:24px">
    <a href="{{.VerifyURL}}" style="background:#4f46e5;color:#fff;padding:8px 16px;text-decoration:none;border-radius:4px">Confirm email</a>
  </p>
  <p style="color:#999;font-size:12px">The link expires in {{.ExpiresIn}}. If you did not expect this email you can ignore it.</p>
</div>
</body>
</html>`))

// SendVerification issues a token for a recipient of one of the caller's
// forms and emails the confirmation link. Repeated sends for the same
// recipient within the cooldown return ErrRateLimited.
func (s *Service) SendVerification(ctx context.Context, recipientID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	rec, err := s.recipients.GetByID(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("send verification: %w", err)
	}
	form, err := s.forms.GetOwned(ctx, ownerID, rec.FormID)
	if err != nil {
		return fmt.Errorf("send verification: %w", err)
	}
	if rec.IsVerified() {
		return fmt.Errorf("send verification: recipient already verified: %w", domain.ErrConflict)
	}

	key := "verify:" + recipientID.String()
	claimed := false
	if s.cooldown != nil && s.cfg.ResendCooldown > 0 {
		ok, err := s.cooldown.Claim(ctx, key, s.cfg.ResendCooldown)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "resend cooldown unavailable", slog.String("error", err.Error()))
		case !ok:
			return fmt.Errorf("send verification: %w", domain.ErrRateLimited)
		default:
			claimed = true
		}
	}

	release := func() {
		if claimed {
			if err := s.cooldown.Release(ctx, key); err != nil {
				s.log.WarnContext(ctx, "release cooldown failed", slog.String("error", err.Error()))
			}
		}
	}

	token, err := s.IssueToken(ctx, recipientID)
	if err != nil {
		release()
		return err
	}

	html, err := renderVerification(form.Name, s.verifyURL(token), s.cfg.TokenTTL.String())
	if err != nil {
		release()
		return fmt.Errorf("send verification: %w", err)
	}

	err = s.mail.Send(ctx, notify.Message{
		To:      []string{rec.Email},
		Subject: "Confirm notifications for " + form.Name,
		HTML:    html,
	})
	if err != nil {
		release()
		return domain.Unavailable("send verification email", err)
	}

	s.log.InfoContext(ctx, "verification email sent",
		slog.String("recipient_id", recipientID.String()),
		slog.String("form_id", form.ID.String()),
	)
	return nil
}

func (s *Service) verifyURL(token string) string {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return s.cfg.BaseURL + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

func renderVerification(formName, verifyURL, expiresIn string) (string, error) {
	var buf bytes.Buffer
	err := verifyTpl.Execute(&buf, struct {
		FormName  string
		VerifyURL string
		ExpiresIn string
	}{formName, verifyURL, expiresIn})
	if err != nil {
		return "", fmt.Errorf("render verification email: %w", err)
	}
	return buf.String(), nil
}
