package rag

import (
	"context"
	"fmt"

	"examprep/internal/config"
	"examprep/internal/domain"
	ragoconfig "github.com/liliang-cn/rago/v2/pkg/config"
	ragodomain "github.com/liliang-cn/rago/v2/pkg/domain"
	"github.com/liliang-cn/rago/v2/pkg/providers"
	"github.com/liliang-cn/rago/v2/pkg/rag"
	ragstore "github.com/liliang-cn/rago/v2/pkg/rag/store"
	"go.uber.org/zap"
)

// ChunkStore wraps rago's similarity index. Text handed to Store is
// split into overlapping chunks by rago's chunker and persisted with the
// supplied tags; Query returns the most similar chunks or nothing at
// all — retrieval never fails the caller.
type ChunkStore struct {
	cfg         *config.Config
	client      *rag.Client
	sqliteStore *ragstore.SQLiteStore
	log         *zap.Logger
}

// NewChunkStore creates a chunk store backed by rago's sqlite vector
// store and an OpenAI-compatible embedding provider.
func NewChunkStore(cfg *config.Config, log *zap.Logger) (*ChunkStore, error) {
	ragoCfg := &ragoconfig.Config{
		Sqvect: ragoconfig.SqvectConfig{
			DBPath:    cfg.RAG.DBPath,
			IndexType: cfg.RAG.IndexType,
		},
		Chunker: ragoconfig.ChunkerConfig{
			ChunkSize: cfg.RAG.ChunkSize,
			Overlap:   cfg.RAG.ChunkOverlap,
		},
		Ingest: ragoconfig.IngestConfig{
			MetadataExtraction: ragoconfig.MetadataExtractionConfig{
				Enable: false,
			},
		},
	}

	factory := providers.NewFactory()

	providerCfg := &ragodomain.OpenAIProviderConfig{
		BaseURL:        cfg.LLM.BaseURL,
		APIKey:         cfg.LLM.APIKey,
		EmbeddingModel: cfg.LLM.EmbeddingModel,
		LLMModel:       cfg.LLM.Model,
	}

	ctx := context.Background()

	embedder, err := factory.CreateEmbedderProvider(ctx, providerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	llmProvider, err := factory.CreateLLMProvider(ctx, providerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	client, err := rag.NewClient(ragoCfg, embedder, llmProvider, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create RAG client: %w", err)
	}

	sqliteStore, err := ragstore.NewSQLiteStore(cfg.RAG.DBPath, cfg.RAG.IndexType)
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite store: %w", err)
	}

	return &ChunkStore{
		cfg:         cfg,
		client:      client,
		sqliteStore: sqliteStore,
		log:         log,
	}, nil
}

// Store splits text into overlapping chunks and persists each with the
// supplied tags merged into its metadata. Returns the number of chunks
// stored.
func (s *ChunkStore) Store(ctx context.Context, text, source string, tags map[string]any) (int, error) {
	if s == nil || s.client == nil {
		return 0, nil
	}
	opts := &rag.IngestOptions{
		ChunkSize: s.cfg.RAG.ChunkSize,
		Overlap:   s.cfg.RAG.ChunkOverlap,
		Metadata:  tags,
	}
	resp, err := s.client.IngestText(ctx, text, source, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to ingest text: %w", err)
	}
	return resp.ChunkCount, nil
}

// Query returns the k chunks most similar to text. Any underlying error
// is swallowed into an empty result so generation proceeds in degraded,
// context-free mode.
func (s *ChunkStore) Query(ctx context.Context, text string, k int) []domain.Chunk {
	if s == nil || s.client == nil {
		return nil
	}

	opts := &rag.QueryOptions{
		TopK:        k,
		Temperature: 0,
		MaxTokens:   0,
		ShowSources: true,
	}

	resp, err := s.client.Query(ctx, text, opts)
	if err != nil {
		s.log.Warn("similarity search failed, continuing without context", zap.Error(err))
		return nil
	}

	chunks := make([]domain.Chunk, 0, len(resp.Sources))
	for _, src := range resp.Sources {
		chunks = append(chunks, domain.Chunk{
			Content: src.Content,
			Tags:    src.Metadata,
			Score:   src.Score,
		})
	}
	return chunks
}

// Close closes the underlying vector store
func (s *ChunkStore) Close() error {
	if s != nil && s.sqliteStore != nil {
		return s.sqliteStore.Close()
	}
	return nil
}
