package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Bind            string
	Provider        string
	DataPath        string
	DataBaseURL     string
	FetchTimeout    Duration
	SessionTTL      Duration
	SessionCapacity int
	CountupDuration Duration
	CopyAckWindow   Duration
	Profile         bool
	Metrics         MetricsConfig
	Log             LogConfig
	// Version is stamped by the binary, not read from the environment.
	Version string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return LoadFrom(NewViper())
}

// NewViper returns a viper instance that resolves keys from the environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadFrom resolves configuration from v, which may carry bound flags and a config file.
// Invalid or non-positive values fall back to defaults.
func LoadFrom(v *viper.Viper) Config {
	return Config{
		Port:            stringOrDefault(v, envPort, DefaultPort),
		Bind:            stringOrDefault(v, envBind, DefaultBind),
		Provider:        strings.ToLower(stringOrDefault(v, envProvider, DefaultProvider)),
		DataPath:        stringOrDefault(v, envDataPath, DefaultDataPath),
		DataBaseURL:     stringOrDefault(v, envDataBaseURL, ""),
		FetchTimeout:    durationOrDefault(v, envFetchTimeout, DefaultFetchTimeout),
		SessionTTL:      durationOrDefault(v, envSessionTTL, DefaultSessionTTL),
		SessionCapacity: intOrDefault(v, envSessionCapacity, DefaultSessionCapacity),
		CountupDuration: durationOrDefault(v, envCountupDuration, DefaultCountupDuration),
		CopyAckWindow:   durationOrDefault(v, envCopyAckWindow, DefaultCopyAckWindow),
		Profile:         boolOrDefault(v, envProfile, false),
		Metrics:         loadMetrics(v),
		Log:             loadLog(v),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return c.Bind + ":" + c.Port
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %s", c.Port)
	}
	if c.Provider == ProviderStatic && c.DataBaseURL == "" {
		return errors.New("static provider requires " + envDataBaseURL)
	}
	return nil
}
