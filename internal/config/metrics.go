package config

import "github.com/spf13/viper"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(v *viper.Viper) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolOrDefault(v, envMetricsOn, true),
		Port:         stringOrDefault(v, envMetricsPort, DefaultMetricsPort),
		OtlpEndpoint: stringOrDefault(v, envOtelEndpoint, ""),
		ServiceName:  stringOrDefault(v, envOtelService, DefaultServiceName),
		OtlpInsecure: boolOrDefault(v, envOtelInsecure, true),
	}
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

func loadLog(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  stringOrDefault(v, envLogLevel, DefaultLogLevel),
		Format: stringOrDefault(v, envLogFormat, DefaultLogFormat),
	}
}
