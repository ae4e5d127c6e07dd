// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the guardian-publisher settings file.
// The file has two sections: "guardian" (search provider URL and key) and
// "aws" (stream target credentials, region, and desired retention hours).
// Every required field must be present and non-empty before any network
// call is attempted; only the region has a fallback.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/guardian-publisher/internal/secrets"
	"github.com/pdiddy/guardian-publisher/pkg/types"
)

// DefaultRegion is used when the settings file omits aws.region.
const DefaultRegion = "us-east-1"

// Error reports unreadable, malformed, or incomplete settings.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration: %s", e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads the settings file at path and returns a validated Config.
// When path is empty the default locations are searched:
// ./guardian-publisher.yaml, then ~/.config/guardian-publisher/config.yaml.
// Values absent from the file may be filled from loaded secret files
// (guardian-api-key, aws-access-key, aws-secret-key) before validation.
func Load(path string, loaded map[string]string) (types.Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("guardian-publisher")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "guardian-publisher"))
		}
	}

	v.SetEnvPrefix("GUARDIAN_PUBLISHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("aws.region", DefaultRegion)

	if err := v.ReadInConfig(); err != nil {
		return types.Config{}, &Error{Reason: "reading settings file", Err: err}
	}

	cfg := types.Config{
		Guardian: types.GuardianConfig{
			APIURL: v.GetString("guardian.api_url"),
			APIKey: v.GetString("guardian.api_key"),
		},
		Stream: types.StreamConfig{
			AccessKey:      v.GetString("aws.access_key"),
			SecretKey:      v.GetString("aws.secret_key"),
			Region:         v.GetString("aws.region"),
			RetentionHours: v.GetInt32("aws.retention_period"),
		},
	}

	secrets.Apply(&cfg, loaded)

	if err := validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// validate checks that every required field is present and usable.
func validate(cfg types.Config) error {
	var missing []string
	if cfg.Guardian.APIURL == "" {
		missing = append(missing, "guardian.api_url")
	}
	if cfg.Guardian.APIKey == "" {
		missing = append(missing, "guardian.api_key")
	}
	if cfg.Stream.AccessKey == "" {
		missing = append(missing, "aws.access_key")
	}
	if cfg.Stream.SecretKey == "" {
		missing = append(missing, "aws.secret_key")
	}
	if cfg.Stream.RetentionHours == 0 {
		missing = append(missing, "aws.retention_period")
	}
	if len(missing) > 0 {
		return &Error{Reason: "missing required settings: " + strings.Join(missing, ", ")}
	}
	if cfg.Stream.RetentionHours < 0 {
		return &Error{Reason: fmt.Sprintf("aws.retention_period must be positive, got %d", cfg.Stream.RetentionHours)}
	}
	return nil
}
