package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestMediastackClient_LatestHeadline(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "title wins",
			status:   http.StatusOK,
			body:     `{"data":[{"title":"  NVIDIA beats estimates ","description":"desc"}]}`,
			expected: "NVIDIA beats estimates",
		},
		{
			name:     "description when title blank",
			status:   http.StatusOK,
			body:     `{"data":[{"title":"","description":"Chip demand stays strong"}]}`,
			expected: "Chip demand stays strong",
		},
		{name: "no articles", status: http.StatusOK, body: `{"data":[]}`, expected: ""},
		{name: "bad status", status: http.StatusUnauthorized, body: `{}`, expected: ""},
		{name: "garbage body", status: http.StatusOK, body: `<html>`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query map[string]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				query = map[string]string{
					"access_key": q.Get("access_key"),
					"keywords":   q.Get("keywords"),
					"categories": q.Get("categories"),
					"limit":      q.Get("limit"),
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewMediastackClient(server.URL, "key", time.Second)
			headline, err := client.LatestHeadline(context.Background(), "NVDA", "NVIDIA")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if headline != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, headline)
			}
			if query["keywords"] != "NVIDIA NVDA" || query["access_key"] != "key" {
				t.Errorf("unexpected query %v", query)
			}
			if query["categories"] != "business" || query["limit"] != "1" {
				t.Errorf("unexpected query %v", query)
			}
		})
	}
}

func TestMediastackClient_RateLimitRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"title":"Recovered"}]}`))
	}))
	defer server.Close()

	client := NewMediastackClient(server.URL, "key", time.Second)
	client.delay = time.Millisecond

	headline, err := client.LatestHeadline(context.Background(), "MSFT", "Microsoft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headline != "Recovered" || calls.Load() != 2 {
		t.Errorf("expected recovery on second call, got %q after %d calls", headline, calls.Load())
	}
}

func TestMediastackClient_Disabled(t *testing.T) {
	client := NewMediastackClient("http://127.0.0.1:0", "", time.Second)
	if client.IsAvailable() {
		t.Error("expected client without key to be unavailable")
	}
	headline, err := client.LatestHeadline(context.Background(), "AAPL", "Apple")
	if err != nil || headline != "" {
		t.Errorf("expected empty result, got %q %v", headline, err)
	}
}
