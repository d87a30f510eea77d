package rag

import (
	"context"
	"strings"

	"examprep/internal/domain"
)

// separator joins chunks into a single context block
const separator = "\n\n"

// Querier is the read side of the chunk store
type Querier interface {
	Query(ctx context.Context, text string, k int) []domain.Chunk
}

// Selector decides what textual context a generation call receives.
// Callers that already did their own retrieval must not be overridden by
// automatic search; the store query is strictly the fallback.
type Selector struct {
	store Querier
}

// NewSelector creates a context selector over the given store
func NewSelector(store Querier) *Selector {
	return &Selector{store: store}
}

// Select assembles a context block for query. With useContext false no
// retrieval is performed; explicit chunks win over a store query and are
// joined in the order supplied.
func (s *Selector) Select(ctx context.Context, query string, useContext bool, explicit []string, k int) string {
	if !useContext {
		return ""
	}
	if len(explicit) > 0 {
		return strings.Join(explicit, separator)
	}

	chunks := s.store.Query(ctx, query, k)
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		parts = append(parts, chunk.Content)
	}
	return strings.Join(parts, separator)
}
