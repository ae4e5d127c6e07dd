// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value. Secrets fill settings the config file omits;
// values present in the config file win.
//
// Supported key files: guardian-api-key, aws-access-key, aws-secret-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/guardian-publisher/pkg/types"
)

// Well-known secret file names.
const (
	KeyGuardianAPIKey = "guardian-api-key"
	KeyAWSAccessKey   = "aws-access-key"
	KeyAWSSecretKey   = "aws-secret-key"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	loaded := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			loaded[name] = value
		}
	}

	return loaded, nil
}

// Apply fills empty credential fields of cfg from loaded secrets. Fields
// already set by the settings file are left untouched.
func Apply(cfg *types.Config, loaded map[string]string) {
	if cfg.Guardian.APIKey == "" {
		cfg.Guardian.APIKey = loaded[KeyGuardianAPIKey]
	}
	if cfg.Stream.AccessKey == "" {
		cfg.Stream.AccessKey = loaded[KeyAWSAccessKey]
	}
	if cfg.Stream.SecretKey == "" {
		cfg.Stream.SecretKey = loaded[KeyAWSSecretKey]
	}
}
