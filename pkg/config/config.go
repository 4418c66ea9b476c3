package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// groqKeyPlaceholder is the value shipped in .env.example; leaving it in
// place means the key was never configured.
const groqKeyPlaceholder = "your_groq_api_key_here"

// Config is the complete service configuration, loaded from the
// environment (plus an optional .env file).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Groq     GroqConfig     `koanf:"groq"`
	OCR      OCRConfig      `koanf:"ocr"`
	Push     PushConfig     `koanf:"push"`
	Google   GoogleConfig   `koanf:"google"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host               string   `koanf:"host"                 env:"SERVER_HOST"                 validate:"required"`
	Port               int      `koanf:"port"                 env:"SERVER_PORT"                 validate:"min=1,max=65535"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" env:"SERVER_CORS_ALLOWED_ORIGINS"`
}

// DatabaseConfig contains the task store connection. An empty connection
// string selects the in-memory store.
type DatabaseConfig struct {
	ConnString  string `koanf:"conn_string"  env:"DB_CONN_STRING"`
	AutoMigrate bool   `koanf:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// GroqConfig contains the mandatory language-model credentials.
type GroqConfig struct {
	APIKey string `koanf:"api_key" env:"GROQ_API_KEY" validate:"required"`
	APIURL string `koanf:"api_url" env:"GROQ_API_URL"`
	Model  string `koanf:"model"   env:"GROQ_MODEL"`
}

// OCRConfig contains OCR service credentials. Absent key disables the
// screenshot pipeline without failing startup.
type OCRConfig struct {
	APIKey string `koanf:"api_key" env:"OCR_API_KEY"`
	APIURL string `koanf:"api_url" env:"OCR_API_URL"`
}

// PushConfig contains Web Push VAPID keys. Absent keys disable push.
type PushConfig struct {
	VAPIDPublicKey  string `koanf:"vapid_public_key"  env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `koanf:"vapid_private_key" env:"VAPID_PRIVATE_KEY"`
	Subject         string `koanf:"subject"           env:"VAPID_SUBJECT"`
}

// GoogleConfig contains Google Calendar OAuth credentials. Absent
// credentials disable the calendar integration.
type GoogleConfig struct {
	ClientID     string `koanf:"client_id"     env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `koanf:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURI  string `koanf:"redirect_uri"  env:"GOOGLE_REDIRECT_URI"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled" env:"METRICS_ENABLED"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level string `koanf:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `koanf:"json"  env:"LOG_JSON"`
}

// Default returns the built-in defaults applied before the environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 4000,
		},
		Database: DatabaseConfig{
			AutoMigrate: true,
		},
		Groq: GroqConfig{
			Model: "llama-3.3-70b-versatile",
		},
		Push: PushConfig{
			Subject: "mailto:admin@remindly.local",
		},
		Google: GoogleConfig{
			RedirectURI: "http://localhost:4000/auth/google/callback",
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks structural constraints and the mandatory Groq key. The
// language model is the one integration the service cannot run without.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if c.Groq.APIKey == groqKeyPlaceholder {
		return fmt.Errorf("GROQ_API_KEY is still set to the placeholder value; get a key from https://console.groq.com/keys")
	}
	return nil
}

// OCREnabled reports whether the screenshot OCR integration is configured.
func (c *Config) OCREnabled() bool {
	return c.OCR.APIKey != ""
}

// PushEnabled reports whether Web Push is configured.
func (c *Config) PushEnabled() bool {
	return c.Push.VAPIDPublicKey != "" && c.Push.VAPIDPrivateKey != ""
}

// CalendarEnabled reports whether the Google Calendar integration is
// configured.
func (c *Config) CalendarEnabled() bool {
	return c.Google.ClientID != "" && c.Google.ClientSecret != ""
}
