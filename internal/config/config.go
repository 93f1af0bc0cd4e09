package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

// insecureDevSecret signs tokens when no secret is configured. It exists so
// the tutorial mode works out of the box and must never be used in
// production; Load flags its use so the entrypoint can warn loudly.
const insecureDevSecret = "fallback-secret-key-for-development-only"

type Config struct {
	Port            int              `json:"port"`
	JWTSecret       string           `json:"jwt_secret"`
	TokenTTLMinutes int              `json:"token_ttl_minutes"`
	// RevealCodes enables the degraded no-mail-provider mode: signup
	// responses carry the plaintext verification code. Opt-in only.
	RevealCodes bool             `json:"reveal_codes"`
	CORSOrigins []string         `json:"cors_origins"`
	Mail        MailConfig       `json:"mail"`
	LogConfig   logger.LogConfig `json:"log_config"`

	// UsingFallbackSecret is set by Load when the insecure dev secret is
	// in effect.
	UsingFallbackSecret bool `json:"-"`
}

type MailConfig struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	From           string `json:"from"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("SECRET_KEY")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureDevSecret
		cfg.UsingFallbackSecret = true
	}
	if cfg.TokenTTLMinutes == 0 {
		cfg.TokenTTLMinutes = 1440
	}
	if cfg.Mail.Host == "" {
		if !cfg.RevealCodes {
			return nil, fmt.Errorf("mail.host is required unless reveal_codes is enabled")
		}
	} else {
		if cfg.RevealCodes {
			return nil, fmt.Errorf("reveal_codes is only valid without a mail provider")
		}
		if cfg.Mail.Port == 0 || cfg.Mail.From == "" {
			return nil, fmt.Errorf("mail.port and mail.from are required")
		}
		if cfg.Mail.TimeoutSeconds == 0 {
			cfg.Mail.TimeoutSeconds = 10
		}
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
