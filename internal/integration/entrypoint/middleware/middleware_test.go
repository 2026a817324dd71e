package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/api/set-goal", handlers...)
	engine.OPTIONS("/api/set-goal", handlers...)
	return engine
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Setenv("ENV", "development")

	limiter := NewRateLimiterWithConfig(2, time.Minute)
	engine := newEngine(limiter.Middleware())

	expected := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, status := range expected {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/set-goal", nil))
		if rec.Code != status {
			t.Errorf("request %d: expected status %d, got %d", i+1, status, rec.Code)
		}
	}

	limiter.Reset()
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/set-goal", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d after reset, got %d", http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_SkippedInTest(t *testing.T) {
	t.Setenv("ENV", "test")

	engine := newEngine(NewRateLimiterWithConfig(1, time.Minute).Middleware())
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/set-goal", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("request %d: expected status %d, got %d", i+1, http.StatusOK, rec.Code)
		}
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, 10*time.Millisecond)
	if !limiter.allow("10.0.0.1") {
		t.Fatal("expected first request to be allowed")
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("expected second request to be limited")
	}

	time.Sleep(20 * time.Millisecond)
	limiter.Cleanup()
	if !limiter.allow("10.0.0.1") {
		t.Error("expected request to be allowed after the window expired")
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		allow          []string
		method         string
		origin         string
		expectedCode   int
		expectedOrigin string
	}{
		{name: "allowed origin", allow: []string{"http://localhost:3000"}, method: http.MethodPost, origin: "http://localhost:3000", expectedCode: http.StatusOK, expectedOrigin: "http://localhost:3000"},
		{name: "trailing slash in config", allow: []string{"http://localhost:3000/"}, method: http.MethodPost, origin: "http://localhost:3000", expectedCode: http.StatusOK, expectedOrigin: "http://localhost:3000"},
		{name: "unknown origin", allow: []string{"http://localhost:3000"}, method: http.MethodPost, origin: "http://evil.test", expectedCode: http.StatusForbidden},
		{name: "no origins configured", allow: nil, method: http.MethodPost, origin: "http://localhost:3000", expectedCode: http.StatusForbidden},
		{name: "origin without scheme ignored", allow: []string{"localhost:3000"}, method: http.MethodPost, origin: "http://localhost:3000", expectedCode: http.StatusForbidden},
		{name: "wildcard", allow: []string{"*"}, method: http.MethodPost, origin: "http://any.test", expectedCode: http.StatusOK, expectedOrigin: "*"},
		{name: "same-origin request", allow: []string{"http://localhost:3000"}, method: http.MethodPost, origin: "", expectedCode: http.StatusOK},
		{name: "preflight", allow: []string{"http://localhost:3000"}, method: http.MethodOptions, origin: "http://localhost:3000", expectedCode: http.StatusNoContent, expectedOrigin: "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(CORS(tt.allow))

			req := httptest.NewRequest(tt.method, "/api/set-goal", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Errorf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.expectedOrigin {
				t.Errorf("expected allow-origin %q, got %q", tt.expectedOrigin, got)
			}
		})
	}
}
