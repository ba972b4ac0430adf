package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/akinloluwami/formdrop/internal/config"
	"github.com/akinloluwami/formdrop/internal/transport/middleware"
)

type accessTokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps groups everything the HTTP surface needs.
type RouterDeps struct {
	Health       *HealthHandler
	Intake       *IntakeHandler
	Verify       *VerifyHandler
	Owner        *OwnerHandler
	Tokens       accessTokenValidator
	RateLimiter  *middleware.RateLimiter
	IntakePerMin int
	VerifyPerMin int
	CORS         config.CORSConfig
	TrustProxy   bool
	Logger       *slog.Logger
}

// NewRouter builds the HTTP handler. Public routes are rate limited per
// IP and the owner API needs a Bearer token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(cors(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(
			middleware.RequestID(),
			middleware.ClientIP(d.TrustProxy),
			middleware.Logger(d.Logger),
			middleware.Recovery(d.Logger),
		))

		r.Route("/v1/f/{formID}", func(r chi.Router) {
			r.Use(d.RateLimiter.Limit(d.IntakePerMin))
			r.Post("/", d.Intake.Submit)
		})

		r.With(d.RateLimiter.Limit(d.VerifyPerMin)).Get("/v1/verify", d.Verify.Verify)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Tokens))

			r.Get("/v1/usage", d.Owner.Usage)

			r.Route("/v1/forms", func(r chi.Router) {
				r.Post("/", d.Owner.CreateForm)
				r.Get("/", d.Owner.ListForms)

				r.Route("/{formID}", func(r chi.Router) {
					r.Get("/", d.Owner.GetForm)
					r.Delete("/", d.Owner.DeleteForm)
					r.Put("/email", d.Owner.SetEmailEnabled)
					r.Put("/origins", d.Owner.SetAllowedOrigins)

					r.Get("/recipients", d.Owner.ListRecipients)
					r.Post("/recipients", d.Owner.AddRecipient)

					r.Get("/integrations", d.Owner.ListIntegrations)
					r.Put("/integrations/{kind}", d.Owner.ConnectIntegration)
					r.Patch("/integrations/{kind}", d.Owner.SetIntegrationEnabled)
					r.Delete("/integrations/{kind}", d.Owner.DisconnectIntegration)

					r.Get("/submissions", d.Owner.ListSubmissions)
					r.Get("/submissions/{submissionID}", d.Owner.GetSubmission)
					r.Delete("/submissions/{submissionID}", d.Owner.DeleteSubmission)
				})
			})

			r.Route("/v1/recipients/{recipientID}", func(r chi.Router) {
				r.Patch("/", d.Owner.SetRecipientEnabled)
				r.Delete("/", d.Owner.RemoveRecipient)
				r.Post("/verification", d.Owner.SendVerification)
			})
		})
	})

	return r
}

// cors answers the public intake route for any origin and the rest of the
// API for the configured origins. It runs before routing so preflight
// requests never reach method matching.
func cors(cfg config.CORSConfig) func(http.Handler) http.Handler {
	public := middleware.PublicCORS()
	owner := middleware.CORS(cfg)
	return func(next http.Handler) http.Handler {
		pub, own := public(next), owner(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/v1/f/") {
				pub.ServeHTTP(w, r)
				return
			}
			own.ServeHTTP(w, r)
		})
	}
}
