package static

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

// Config controls where the rivalry document is fetched from.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the rivalry document as a static asset over HTTP.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a static asset client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// URL is the full document location.
func (c *Client) URL() string {
	return c.baseURL + documentPath
}

// FetchRecord performs one unauthenticated GET of the document.
func (c *Client) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return rivalry.Record{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return rivalry.Record{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return rivalry.Record{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return providers.DecodeRecord(resp.Body)
}
