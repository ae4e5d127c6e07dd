// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GuardianConfig holds the search provider settings (the [guardian]
// section of the settings file).
type GuardianConfig struct {
	// APIURL is the base URL of the content search endpoint
	// (e.g. "https://content.guardianapis.com/search").
	APIURL string `json:"api_url" yaml:"api_url"`

	// APIKey authenticates requests to the search provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// StreamConfig holds the stream target settings (the [aws] section of
// the settings file).
type StreamConfig struct {
	// AccessKey and SecretKey are the static credentials the Kinesis
	// client is constructed with.
	AccessKey string `json:"access_key,omitempty" yaml:"access_key,omitempty"`
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`

	// Region is the AWS region of the target stream (default "us-east-1").
	Region string `json:"region" yaml:"region"`

	// RetentionHours is the retention period the stream is reconciled to
	// before each publish.
	RetentionHours int32 `json:"retention_period" yaml:"retention_period"`
}

// Config groups the settings for one invocation.
type Config struct {
	Guardian GuardianConfig `json:"guardian" yaml:"guardian"`
	Stream   StreamConfig   `json:"aws" yaml:"aws"`
}
