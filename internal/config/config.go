package config

import (
	"fmt"
	"os"
	"strings"
)

// Config keeps runtime settings for the service.
type Config struct {
	DatabaseURL      string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	RefreshTime      string // HH:MM, daily priority refresh slot
	DispatchTime     string // HH:MM, daily reminder dispatch slot
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TwilioAccountSID: strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:  strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioFromNumber: strings.TrimSpace(os.Getenv("TWILIO_PHONE_NUMBER")),
		RefreshTime:      strings.TrimSpace(os.Getenv("REFRESH_TIME")),
		DispatchTime:     strings.TrimSpace(os.Getenv("DISPATCH_TIME")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskring.db"
	}
	if cfg.RefreshTime == "" {
		cfg.RefreshTime = "00:00"
	}
	if cfg.DispatchTime == "" {
		cfg.DispatchTime = "12:00"
	}

	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return cfg, fmt.Errorf("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER are required")
	}

	return cfg, nil
}
