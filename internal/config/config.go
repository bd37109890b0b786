package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the web client.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	BackendBaseURL    string
	BackendTimeout    time.Duration
	SessionCookieName string
	CookieSecure      bool
	MaxUploadBytes    int64
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("F2L")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Fun2Learn Web")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("session.cookie_name", "accessToken")
	v.SetDefault("cookie.secure", false)
	v.SetDefault("max_upload_mb", 10)

	timeoutString := v.GetString("backend.timeout")
	if timeoutString == "" {
		timeoutString = "30s"
	}

	timeout, err := time.ParseDuration(timeoutString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid backend timeout: %w", err)
	}

	maxUploadMB := v.GetInt64("max_upload_mb")
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		BackendBaseURL:    strings.TrimRight(v.GetString("backend.base_url"), "/"),
		BackendTimeout:    timeout,
		SessionCookieName: v.GetString("session.cookie_name"),
		CookieSecure:      v.GetBool("cookie.secure"),
		MaxUploadBytes:    maxUploadMB << 20,
	}

	if cfg.BackendBaseURL == "" {
		return Config{}, fmt.Errorf("backend base url must be provided")
	}

	return cfg, nil
}
