// Package ticketmaster is a thin client for the Ticketmaster Discovery
// API, reshaping its responses into the internal source-event shape.
package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

const (
	defaultBaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"
	defaultTimeout = 15 * time.Second
	pageSize       = "20"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("ticketmaster api key is not configured")

// UpstreamError carries a non-2xx reply from the Discovery API.
type UpstreamError struct {
	StatusCode int
	Details    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ticketmaster api: status %d: %s", e.StatusCode, e.Details)
}

// segmentNames maps common search terms to the Discovery API's segment
// taxonomy.
var segmentNames = map[string]string{
	"music":    "Music",
	"concert":  "Music",
	"concerts": "Music",
	"sports":   "Sports",
	"sport":    "Sports",
	"game":     "Sports",
	"games":    "Sports",
	"art":      "Arts & Theatre",
	"arts":     "Arts & Theatre",
	"theatre":  "Arts & Theatre",
	"theater":  "Arts & Theatre",
	"play":     "Arts & Theatre",
	"movie":    "Film",
	"film":     "Film",
	"cinema":   "Film",
}

// Config holds client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client queries the Discovery API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
	now        func() time.Time
}

// New creates a Discovery API client. An empty API key is allowed; the
// client then reports itself unconfigured and refuses to search.
func New(cfg Config, log *zap.SugaredLogger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		now:        time.Now,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SearchParams narrows an event search. Only Query is required.
type SearchParams struct {
	Query     string
	Location  string
	EventType string
	StartDate string
	EndDate   string
}

// Pagination mirrors the upstream page block.
type Pagination struct {
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Size          int `json:"size"`
	Number        int `json:"number"`
}

// SearchResult is the reshaped search response.
type SearchResult struct {
	Events     []model.SourceEvent `json:"events"`
	Pagination *Pagination         `json:"pagination"`
	Links      json.RawMessage     `json:"_links,omitempty"`
}

// Search queries the Discovery API and reshapes the result list.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	reqURL := c.baseURL + "?" + c.buildQuery(params).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	c.log.Debugw("searching events", "query", params.Query, "location", params.Location, "type", params.EventType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Details: string(body)}
	}

	var decoded discoveryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return reshape(decoded), nil
}

func (c *Client) buildQuery(params SearchParams) url.Values {
	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("keyword", params.Query)
	values.Set("size", pageSize)
	values.Set("sort", "date,asc")

	if params.Location != "" {
		if strings.Contains(params.Location, ",") {
			parts := strings.SplitN(params.Location, ",", 2)
			city := strings.TrimSpace(parts[0])
			state := strings.TrimSpace(parts[1])
			values.Set("city", city)
			if len(state) == 2 {
				values.Set("stateCode", strings.ToUpper(state))
			}
		} else {
			values.Set("city", strings.TrimSpace(params.Location))
		}
	}

	if params.EventType != "" {
		if segment, ok := segmentNames[strings.ToLower(params.EventType)]; ok {
			values.Set("segmentName", segment)
		}
	}

	if start := parseAPIDate(params.StartDate); start != "" {
		values.Set("startDateTime", start)
	} else {
		values.Set("startDateTime", c.now().UTC().Format("2006-01-02T15:04:05Z"))
	}
	if end := parseAPIDate(params.EndDate); end != "" {
		values.Set("endDateTime", end)
	}

	return values
}

// parseAPIDate normalizes a submitted date into the upstream's required
// format; invalid input yields an empty string and is skipped.
func parseAPIDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
	return ""
}
