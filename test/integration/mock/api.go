package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ReceivedRequest is one call the mock server saw.
type ReceivedRequest struct {
	Body    map[string]any
	Queries map[string]string
	Headers map[string]string
}

type cannedResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP server standing in for third-party APIs. Responses are
// registered per method and path; a "*" path segment matches any value.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	received  map[string][]ReceivedRequest
	responses map[string]map[int]cannedResponse
	defaults  map[string]cannedResponse
}

func NewApiServer() *ApiMock {
	a := &ApiMock{}
	a.Reset()
	return a
}

// Start serves requests on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// Reset forgets every registered response and received request.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = map[string][]ReceivedRequest{}
	a.responses = map[string]map[int]cannedResponse{}
	a.defaults = map[string]cannedResponse{}
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body == nil {
		body = map[string]any{}
	}

	request := ReceivedRequest{
		Body:    body,
		Queries: map[string]string{},
		Headers: map[string]string{},
	}
	for key, value := range r.URL.Query() {
		request.Queries[key] = value[0]
	}
	for key, value := range r.Header {
		request.Headers[key] = value[0]
	}

	a.mu.Lock()
	exactKey := r.Method + r.URL.Path
	index := len(a.received[exactKey])
	a.received[exactKey] = append(a.received[exactKey], request)
	response := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	payload, _ := json.Marshal(response.body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	_, _ = w.Write(payload)
}

// SetResponse registers the answer for the index-th call to method+path.
// An index of -1 sets the answer for every call without a specific one.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	canned := cannedResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = canned
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]cannedResponse{}
	}
	a.responses[key][index] = canned
}

// Requests returns every call received for method+path, in arrival order.
func (a *ApiMock) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []ReceivedRequest
	for key, requests := range a.received {
		if strings.HasPrefix(key, method+"/") && matchPath(path, strings.TrimPrefix(key, method)) {
			out = append(out, requests...)
		}
	}
	return out
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	requests := a.Requests(method, path)
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index].Body
}

func (a *ApiMock) GetRequestQueries(method, path string, index int) map[string]string {
	requests := a.Requests(method, path)
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index].Queries
}

// responseFor must be called with a.mu held. Unregistered calls answer 200 with {}.
func (a *ApiMock) responseFor(method, path string, index int) cannedResponse {
	for key, byIndex := range a.responses {
		if a.keyMatches(key, method, path) {
			if canned, ok := byIndex[index]; ok {
				return canned
			}
		}
	}
	for key, canned := range a.defaults {
		if a.keyMatches(key, method, path) {
			return canned
		}
	}
	return cannedResponse{status: http.StatusOK, body: map[string]any{}}
}

func (a *ApiMock) keyMatches(key, method, path string) bool {
	if !strings.HasPrefix(key, method+"/") {
		return false
	}
	return matchPath(strings.TrimPrefix(key, method), path)
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
