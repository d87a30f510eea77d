package service

import (
	"context"

	"examprep/internal/domain"
)

// Retrieval depth per operation kind
const (
	topKChat    = 3
	topKMindMap = 5
	topKPodcast = 5
	topKModule  = 8
)

// Generator is the LLM collaborator used for all generation calls
type Generator interface {
	Chat(ctx context.Context, messages []domain.Message) (string, error)
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ContextSelector assembles the context block for a generation call
type ContextSelector interface {
	Select(ctx context.Context, query string, useContext bool, explicit []string, k int) string
}

// ChunkWriter is the write side of the chunk store
type ChunkWriter interface {
	Store(ctx context.Context, text, source string, tags map[string]any) (int, error)
}

// Synthesizer converts text to audio bytes
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
