package registry

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	maxFormName   = 200
	maxOrigins    = 50
	maxEmailChars = 320
)

// CreateFormInput holds the parameters for creating a form.
type CreateFormInput struct {
	Name           string
	EmailEnabled   bool
	AllowedOrigins []string
}

// Validate checks all fields and collects all errors.
func (i CreateFormInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxFormName {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	errs = append(errs, validateOrigins(i.AllowedOrigins)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateOrigins(origins []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(origins) > maxOrigins {
		errs = append(errs, domain.FieldError{Field: "allowed_origins", Message: "max 50 entries"})
	}
	for _, o := range origins {
		if domain.OriginHost(o) == "" {
			errs = append(errs, domain.FieldError{Field: "allowed_origins", Message: "invalid origin: " + o})
		}
	}
	return errs
}

// AddRecipientInput holds the parameters for adding a recipient.
type AddRecipientInput struct {
	FormID uuid.UUID
	Email  string
}

// Validate checks all fields and collects all errors.
func (i AddRecipientInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailChars:
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 320 characters"})
	case validate.Var(email, "email") != nil:
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConnectIntegrationInput holds the parameters for connecting a channel.
type ConnectIntegrationInput struct {
	FormID      uuid.UUID
	Kind        domain.ChannelKind
	Credentials domain.Credentials
}

// Validate checks that the kind is an integration and that the
// credentials are complete for it.
func (i ConnectIntegrationInput) Validate() error {
	var errs []domain.FieldError

	if i.FormID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "form_id", Message: "required"})
	}
	if !i.Kind.IsIntegration() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown integration"})
		return &domain.ValidationError{Errors: errs}
	}

	c := i.Credentials
	switch i.Kind {
	case domain.ChannelSlack, domain.ChannelDiscord:
		if validate.Var(c.WebhookURL, "required,https_url") != nil {
			errs = append(errs, domain.FieldError{Field: "webhook_url", Message: "must be an https URL"})
		}
	case domain.ChannelSheets:
		if strings.TrimSpace(c.AccessToken) == "" && strings.TrimSpace(c.RefreshToken) == "" {
			errs = append(errs, domain.FieldError{Field: "access_token", Message: "access or refresh token required"})
		}
		if strings.TrimSpace(c.SpreadsheetID) == "" {
			errs = append(errs, domain.FieldError{Field: "spreadsheet_id", Message: "required"})
		}
	case domain.ChannelAirtable:
		if strings.TrimSpace(c.APIKey) == "" {
			errs = append(errs, domain.FieldError{Field: "api_key", Message: "required"})
		}
		if strings.TrimSpace(c.BaseID) == "" {
			errs = append(errs, domain.FieldError{Field: "base_id", Message: "required"})
		}
		if strings.TrimSpace(c.TableName) == "" {
			errs = append(errs, domain.FieldError{Field: "table_name", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
