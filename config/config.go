package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration read from the environment
type Config struct {
	Port     string
	DBPath   string
	LogPath  string
	LogLevel string
	UseHTTPS bool

	// MediaRoot is the directory backing the managed file store
	MediaRoot string
	// MediaURLPrefix is stripped from stored upload values to get media-relative paths
	MediaURLPrefix string
	// UploadsPath is the uploads directory relative to MediaRoot
	UploadsPath   string
	TemplatesRoot string

	SMTP SMTPConfig
	OIDC OIDCConfig

	AriaInvalid     bool
	FocusFirstError bool
}

// SMTPConfig holds outgoing mail settings
type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	From            string
	TLSPolicy       string
	SigningCertFile string
	SigningKeyFile  string
}

// OIDCConfig holds backoffice login settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether backoffice login is configured
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != ""
}

// Load reads an optional .env file and then the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables
func FromEnv() (*Config, error) {
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "s3forms.db"),
		LogPath:        os.Getenv("LOG_PATH"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		UseHTTPS:       getBool("USE_HTTPS"),
		MediaRoot:      getEnv("MEDIA_ROOT", "media"),
		MediaURLPrefix: getEnv("MEDIA_URL_PREFIX", "/media/"),
		UploadsPath:    getEnv("UPLOADS_PATH", "forms/upload"),
		TemplatesRoot:  getEnv("TEMPLATES_ROOT", "views"),
		SMTP: SMTPConfig{
			Host:            os.Getenv("SMTP_HOST"),
			Port:            smtpPort,
			Username:        os.Getenv("SMTP_USERNAME"),
			Password:        os.Getenv("SMTP_PASSWORD"),
			From:            os.Getenv("SMTP_FROM"),
			TLSPolicy:       getEnv("SMTP_TLS", "opportunistic"),
			SigningCertFile: os.Getenv("SIGNING_CERT_FILE"),
			SigningKeyFile:  os.Getenv("SIGNING_KEY_FILE"),
		},
		OIDC: OIDCConfig{
			Domain:       os.Getenv("OIDC_DOMAIN"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		},
		AriaInvalid:     getBool("FORMS_ARIA_INVALID"),
		FocusFirstError: getBool("FORMS_FOCUS_FIRST_ERROR"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
