package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/rivalry-service/internal/config"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

var knownProviders = map[string]bool{
	config.ProviderFixture: true,
	config.ProviderFile:    true,
	config.ProviderStatic:  true,
}

// normalizeProviderName returns the lower-cased configured name when it is a known provider,
// otherwise a name derived from the instance so logs and metrics match what actually runs.
func normalizeProviderName(raw string, provider providers.RecordProvider) string {
	if name := strings.ToLower(raw); knownProviders[name] {
		return name
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
