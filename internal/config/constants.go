package config

import "time"

const (
	envPort            = "PORT"
	envBind            = "BIND"
	envProvider        = "PROVIDER"
	envDataPath        = "DATA_PATH"
	envDataBaseURL     = "DATA_BASE_URL"
	envFetchTimeout    = "FETCH_TIMEOUT"
	envSessionTTL      = "SESSION_TTL"
	envSessionCapacity = "SESSION_CAPACITY"
	envCountupDuration = "COUNTUP_DURATION"
	envCopyAckWindow   = "COPY_ACK_WINDOW"
	envProfile         = "PROFILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	DefaultPort            = "4000"
	DefaultBind            = "0.0.0.0"
	DefaultProvider        = "fixture"
	DefaultDataPath        = "data/rivalry.json"
	DefaultFetchTimeout    = 10 * Duration(time.Second)
	DefaultSessionTTL      = 30 * Duration(time.Minute)
	DefaultSessionCapacity = 10000
	DefaultCountupDuration = Duration(time.Second)
	DefaultCopyAckWindow   = 2 * Duration(time.Second)
	DefaultMetricsPort     = "9090"
	DefaultServiceName     = "rivalry-service"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderFixture = "fixture"
	ProviderFile    = "file"
	ProviderStatic  = "static"
)
