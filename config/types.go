package config

import (
	"time"

	"github.com/mezonai/wavesgo/types"
)

// Profile names a network and the public node serving it.
type Profile struct {
	Name    string
	ChainID types.ChainID
	URL     string
}

// ClientConfig is the client section of a configuration file.
type ClientConfig struct {
	Profile            string `yaml:"profile" ini:"profile"`
	NodeURL            string `yaml:"node_url" ini:"node_url"`
	TimeoutSeconds     int    `yaml:"timeout_seconds" ini:"timeout_seconds"`
	PollIntervalMs     int    `yaml:"poll_interval_ms" ini:"poll_interval_ms"`
	WaitTimeoutSeconds int    `yaml:"wait_timeout_seconds" ini:"wait_timeout_seconds"`
	// MaxRequestsPerSecond of 0 disables client-side throttling.
	MaxRequestsPerSecond int `yaml:"max_requests_per_second" ini:"max_requests_per_second"`
}

// ConfigFile is the top-level structure of a YAML configuration file
type ConfigFile struct {
	Client ClientConfig `yaml:"client"`
}

// Resolved is a ClientConfig with defaults applied.
type Resolved struct {
	Profile      Profile
	NodeURL      string
	Timeout      time.Duration
	PollInterval time.Duration
	WaitTimeout  time.Duration

	MaxRequestsPerSecond int
}
