package static

import "time"

const (
	defaultBaseURL     = "http://localhost:4000"
	defaultHTTPTimeout = 10 * time.Second
	documentPath       = "/data/rivalry.json"
	providerName       = "static"
)
