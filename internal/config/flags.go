package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RegisterFlags defines command-line overrides for every configuration key.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringP("port", "p", DefaultPort, "port to listen on (env: PORT)")
	fs.StringP("bind", "b", DefaultBind, "address to bind to (env: BIND)")
	fs.String("provider", DefaultProvider, "record source: fixture, file or static (env: PROVIDER)")
	fs.String("data-path", DefaultDataPath, "rivalry document path for the file provider (env: DATA_PATH)")
	fs.String("data-base-url", "", "site origin for the static provider (env: DATA_BASE_URL)")
	fs.Duration("fetch-timeout", DefaultFetchTimeout, "timeout for the record fetch (env: FETCH_TIMEOUT)")
	fs.Duration("session-ttl", DefaultSessionTTL, "idle time before a visitor session is dropped (env: SESSION_TTL)")
	fs.Int("session-capacity", DefaultSessionCapacity, "maximum tracked visitor sessions (env: SESSION_CAPACITY)")
	fs.Duration("countup-duration", DefaultCountupDuration, "hero counter animation length (env: COUNTUP_DURATION)")
	fs.Duration("copy-ack-window", DefaultCopyAckWindow, "how long the copied confirmation is shown (env: COPY_ACK_WINDOW)")
	fs.Bool("profile", false, "register net/http/pprof handlers (env: PROFILE)")
	fs.String("log-level", DefaultLogLevel, "debug, info, warn or error (env: LOG_LEVEL)")
	fs.String("log-format", DefaultLogFormat, "text or json (env: LOG_FORMAT)")
}

// BindFlags wires flags into v so that explicitly set flags win over the environment.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		key := flagKey(f.Name)
		_ = v.BindPFlag(key, f)
		_ = v.BindEnv(key)
		if !f.Changed && v.IsSet(key) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(key)))
		}
	})
}

// ReadFile merges a config file into v when path is set.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func flagKey(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
