package rag

import (
	"context"
	"testing"

	"examprep/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeQuerier struct {
	chunks  []domain.Chunk
	queried bool
	lastK   int
}

func (f *fakeQuerier) Query(_ context.Context, _ string, k int) []domain.Chunk {
	f.queried = true
	f.lastK = k
	return f.chunks
}

func TestSelectNoContext(t *testing.T) {
	store := &fakeQuerier{chunks: []domain.Chunk{{Content: "unused"}}}
	selector := NewSelector(store)

	got := selector.Select(context.Background(), "anything", false, []string{"a"}, 3)
	assert.Empty(t, got)
	assert.False(t, store.queried)
}

func TestSelectExplicitChunksWin(t *testing.T) {
	store := &fakeQuerier{chunks: []domain.Chunk{{Content: "from store"}}}
	selector := NewSelector(store)

	got := selector.Select(context.Background(), "q", true, []string{"a", "b"}, 3)
	assert.Equal(t, "a\n\nb", got)
	assert.False(t, store.queried, "explicit context must not be overridden by a store query")
}

func TestSelectFallsThroughToStore(t *testing.T) {
	store := &fakeQuerier{chunks: []domain.Chunk{
		{Content: "first chunk"},
		{Content: "second chunk"},
	}}
	selector := NewSelector(store)

	got := selector.Select(context.Background(), "q", true, nil, 5)
	assert.Equal(t, "first chunk\n\nsecond chunk", got)
	assert.True(t, store.queried)
	assert.Equal(t, 5, store.lastK)
}

func TestSelectEmptyStoreResult(t *testing.T) {
	selector := NewSelector(&fakeQuerier{})

	got := selector.Select(context.Background(), "q", true, []string{}, 3)
	assert.Empty(t, got)
}
