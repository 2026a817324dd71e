// Package news looks up market headlines through the Mediastack API.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/financial-coach/backend/internal/application/adapter"
)

// DefaultBaseURL is the Mediastack news endpoint. The free tier is HTTP only.
const DefaultBaseURL = "http://api.mediastack.com/v1/news"

var errRateLimited = errors.New("mediastack rate limit reached")

// MediastackClient implements adapter.NewsService.
type MediastackClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	delay   time.Duration
}

// NewMediastackClient creates a new Mediastack client. An empty apiKey disables lookups.
func NewMediastackClient(baseURL, apiKey string, timeout time.Duration) *MediastackClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &MediastackClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		delay:   time.Second,
	}
}

// IsAvailable reports whether an API key is configured.
func (c *MediastackClient) IsAvailable() bool {
	return c.apiKey != ""
}

type newsResponse struct {
	Data []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"data"`
}

// LatestHeadline returns the newest business headline for the company, or its
// description when the title is blank. Non-200 answers count as "nothing found".
func (c *MediastackClient) LatestHeadline(ctx context.Context, symbol, name string) (string, error) {
	if !c.IsAvailable() {
		return "", nil
	}

	query := strings.TrimSpace(strings.Join([]string{strings.TrimSpace(name), strings.TrimSpace(symbol)}, " "))
	if query == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("languages", "en")
	params.Set("sort", "published_desc")
	params.Set("limit", "1")
	params.Set("categories", "business")
	params.Set("keywords", query)
	endpoint := c.baseURL + "?" + params.Encode()

	var headline string
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return err
			}
			resp, err := c.http.Do(req)
			if err != nil {
				return fmt.Errorf("failed to fetch headline: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests {
				return errRateLimited
			}
			if resp.StatusCode != http.StatusOK {
				headline = ""
				return nil
			}

			var body newsResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				headline = ""
				return nil
			}
			headline = pickHeadline(body)
			return nil
		},
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, errRateLimited)
		}),
		retry.Attempts(2),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", err
	}
	return headline, nil
}

func pickHeadline(body newsResponse) string {
	if len(body.Data) == 0 {
		return ""
	}
	top := body.Data[0]
	if title := strings.TrimSpace(top.Title); title != "" {
		return title
	}
	return strings.TrimSpace(top.Description)
}

var _ adapter.NewsService = (*MediastackClient)(nil)
