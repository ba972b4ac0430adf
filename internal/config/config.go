package config

import (
	"strings"
	"time"

	"github.com/akinloluwami/formdrop/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	NATS         NATSConfig         `yaml:"nats"`
	Auth         AuthConfig         `yaml:"auth"`
	Secrets      SecretsConfig      `yaml:"secrets"`
	Quota        QuotaConfig        `yaml:"quota"`
	Intake       IntakeConfig       `yaml:"intake"`
	Verification VerificationConfig `yaml:"verification"`
	Dispatch     DispatchConfig     `yaml:"dispatch"`
	Mail         MailConfig         `yaml:"mail"`
	Google       GoogleConfig       `yaml:"google"`
	Retention    RetentionConfig    `yaml:"retention"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
}

// CORSConfig holds CORS settings for the owner-facing API. The public intake
// route answers any origin and enforces per-form allow-lists itself.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis settings. An empty URL disables delivery dedupe
// and the verification resend cooldown.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// NATSConfig holds NATS settings. An empty URL disables event publishing.
type NATSConfig struct {
	URL     string `yaml:"url"     env:"NATS_URL"`
	Subject string `yaml:"subject" env:"NATS_SUBJECT" env-default:"formdrop.submissions"`
}

// AuthConfig holds settings for validating owner access tokens. Tokens are
// issued by the session collaborator.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"formdrop"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// SecretsConfig holds the key used to seal integration credentials at rest.
type SecretsConfig struct {
	// CredentialsKey is a base64-encoded 32-byte key.
	CredentialsKey string `yaml:"credentials_key" env:"SECRETS_CREDENTIALS_KEY" env-required:"true"`
}

// QuotaConfig maps plans to monthly submission limits.
type QuotaConfig struct {
	FreeLimit int `yaml:"free_limit" env:"QUOTA_FREE_LIMIT" env-default:"100"`
	ProLimit  int `yaml:"pro_limit"  env:"QUOTA_PRO_LIMIT"  env-default:"10000"`
}

// LimitFor returns the monthly limit for plan. Unknown plans get the free limit.
func (c QuotaConfig) LimitFor(plan domain.Plan) int {
	if plan == domain.PlanPro {
		return c.ProLimit
	}
	return c.FreeLimit
}

// IntakeConfig bounds public submissions.
type IntakeConfig struct {
	MaxBodyBytes    int64 `yaml:"max_body_bytes"      env:"INTAKE_MAX_BODY_BYTES"      env-default:"65536"`
	MaxFields       int   `yaml:"max_fields"          env:"INTAKE_MAX_FIELDS"          env-default:"100"`
	RateLimitPerMin int   `yaml:"rate_limit_per_min"  env:"INTAKE_RATE_LIMIT_PER_MIN"  env-default:"60"`
}

// VerificationConfig holds recipient email verification settings.
type VerificationConfig struct {
	TokenTTL        time.Duration `yaml:"token_ttl"          env:"VERIFICATION_TOKEN_TTL"          env-default:"24h"`
	BaseURL         string        `yaml:"base_url"           env:"VERIFICATION_BASE_URL"           env-default:"http://localhost:8080/v1/verify"`
	ResendCooldown  time.Duration `yaml:"resend_cooldown"    env:"VERIFICATION_RESEND_COOLDOWN"    env-default:"1m"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"VERIFICATION_RATE_LIMIT_PER_MIN" env-default:"30"`
}

// DispatchConfig holds notification fan-out settings.
type DispatchConfig struct {
	Timeout     time.Duration `yaml:"timeout"      env:"DISPATCH_TIMEOUT"      env-default:"10s"`
	MaxParallel int           `yaml:"max_parallel" env:"DISPATCH_MAX_PARALLEL" env-default:"8"`
	DedupeTTL   time.Duration `yaml:"dedupe_ttl"   env:"DISPATCH_DEDUPE_TTL"   env-default:"24h"`

	// Redelivery settings, used by cmd/redeliver.
	RedeliverWindow time.Duration `yaml:"redeliver_window" env:"DISPATCH_REDELIVER_WINDOW" env-default:"24h"`
	RedeliverGrace  time.Duration `yaml:"redeliver_grace"  env:"DISPATCH_REDELIVER_GRACE"  env-default:"5m"`
	MaxAttempts     int           `yaml:"max_attempts"     env:"DISPATCH_MAX_ATTEMPTS"     env-default:"5"`
	RedeliverBatch  int           `yaml:"redeliver_batch"  env:"DISPATCH_REDELIVER_BATCH"  env-default:"100"`
}

// MailConfig holds outbound email settings. When ResendAPIKey is set the
// Resend HTTP API is used instead of SMTP.
type MailConfig struct {
	From         string `yaml:"from"           env:"MAIL_FROM"           env-default:"FormDrop <notifications@formdrop.local>"`
	SMTPHost     string `yaml:"smtp_host"      env:"MAIL_SMTP_HOST"      env-default:"localhost"`
	SMTPPort     int    `yaml:"smtp_port"      env:"MAIL_SMTP_PORT"      env-default:"587"`
	SMTPUser     string `yaml:"smtp_user"      env:"MAIL_SMTP_USER"`
	SMTPPassword string `yaml:"smtp_password"  env:"MAIL_SMTP_PASSWORD"`
	ResendAPIKey string `yaml:"resend_api_key" env:"MAIL_RESEND_API_KEY"`
}

// UseResend reports whether mail goes through the Resend API.
func (c MailConfig) UseResend() bool {
	return strings.TrimSpace(c.ResendAPIKey) != ""
}

// GoogleConfig holds the OAuth client used to refresh Google Sheets tokens.
type GoogleConfig struct {
	ClientID     string `yaml:"client_id"     env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
}

// RetentionConfig holds submission retention settings used by cmd/cleanup.
type RetentionConfig struct {
	SubmissionDays int `yaml:"submission_days" env:"RETENTION_SUBMISSION_DAYS" env-default:"365"`
	DeletedDays    int `yaml:"deleted_days"    env:"RETENTION_DELETED_DAYS"    env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
