package search

import "context"

// FallbackSearcher is an external search collaborator invoked when the
// confidence gate distrusts the local ranking. Results are returned alongside
// local results, never merged into them; a fallback failure degrades to
// partial results rather than failing the response.
type FallbackSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]FallbackResult, error)
}

// NoopFallback is a FallbackSearcher that returns no results. Useful for
// tests and deployments without an external search collaborator.
type NoopFallback struct{}

var _ FallbackSearcher = (*NoopFallback)(nil)

// Search always returns an empty result set.
func (NoopFallback) Search(_ context.Context, _ string, _ int) ([]FallbackResult, error) {
	return []FallbackResult{}, nil
}
