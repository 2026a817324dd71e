// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// NewsService looks up market headlines.
type NewsService interface {
	// LatestHeadline returns the most recent business headline mentioning the company.
	// An empty string with a nil error means nothing was found.
	LatestHeadline(ctx context.Context, symbol, name string) (string, error)

	// IsAvailable reports whether an API key is configured.
	IsAvailable() bool
}
