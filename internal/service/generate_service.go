package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"examprep/internal/domain"
	"examprep/internal/llmjson"
	"examprep/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateService produces persisted artifacts (mind maps, learning
// modules, podcasts) from a single model invocation each.
type GenerateService struct {
	selector ContextSelector
	llm      Generator
	tts      Synthesizer
	mindmaps *repository.MindMapStore
	modules  *repository.ModuleStore
	podcasts *repository.PodcastStore
	log      *zap.Logger
}

// NewGenerateService creates a new generation service
func NewGenerateService(
	selector ContextSelector,
	llm Generator,
	tts Synthesizer,
	mindmaps *repository.MindMapStore,
	modules *repository.ModuleStore,
	podcasts *repository.PodcastStore,
	log *zap.Logger,
) *GenerateService {
	return &GenerateService{
		selector: selector,
		llm:      llm,
		tts:      tts,
		mindmaps: mindmaps,
		modules:  modules,
		podcasts: podcasts,
		log:      log,
	}
}

// mindMapPayload is the JSON shape requested from the model
type mindMapPayload struct {
	Title string                        `json:"title"`
	Root  domain.MindMapNode            `json:"root_node"`
	Nodes map[string]domain.MindMapNode `json:"nodes"`
}

// GenerateMindMap asks the model for a concept graph, recovers the JSON
// from its output, validates the graph and persists it.
func (s *GenerateService) GenerateMindMap(ctx context.Context, req *domain.GenerateRequest) (*domain.MindMap, error) {
	query := buildArtifactQuery(req.Subject, req.Topic)
	contextBlock := s.selector.Select(ctx, query, true, nil, topKMindMap)

	prompt := fmt.Sprintf(mindMapPromptTemplate, req.Subject, topicClause(req.Topic), contextClause(contextBlock))
	raw, err := s.llm.Complete(ctx, mindMapSystem, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	data, err := llmjson.Extract(raw, "root_node", "nodes")
	if err != nil {
		return nil, err
	}

	var payload mindMapPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domain.NewMalformedOutputError(raw, err)
	}

	// Backfill ids the model left implicit in the node mapping.
	for id, node := range payload.Nodes {
		if node.ID == "" {
			node.ID = id
			payload.Nodes[id] = node
		}
	}

	title := payload.Title
	if title == "" {
		title = req.Subject
	}
	mindMap := &domain.MindMap{
		ID:        uuid.New().String(),
		Title:     title,
		Subject:   req.Subject,
		Root:      payload.Root,
		Nodes:     payload.Nodes,
		CreatedAt: time.Now(),
	}

	if err := validateMindMap(mindMap); err != nil {
		return nil, err
	}

	if err := s.mindmaps.Save(mindMap.ID, mindMap); err != nil {
		return nil, fmt.Errorf("failed to save mind map: %w", err)
	}
	return mindMap, nil
}

// GenerateModule produces a prose learning module
func (s *GenerateService) GenerateModule(ctx context.Context, req *domain.GenerateRequest) (*domain.StudyModule, error) {
	query := buildArtifactQuery(req.Subject, req.Topic)
	contextBlock := s.selector.Select(ctx, query, true, nil, topKModule)

	prompt := fmt.Sprintf(modulePromptTemplate, req.Subject, topicClause(req.Topic), contextClause(contextBlock))
	content, err := s.llm.Complete(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	module := &domain.StudyModule{
		ID:        uuid.New().String(),
		Title:     artifactTitle(req.Subject, req.Topic),
		Subject:   req.Subject,
		Topic:     req.Topic,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.modules.Save(module.ID, module); err != nil {
		return nil, fmt.Errorf("failed to save learning module: %w", err)
	}
	return module, nil
}

// GeneratePodcast produces a narrated podcast. Speech synthesis is
// strictly best-effort: both synthesis strategies failing degrades the
// artifact to transcript-only and never fails the request.
func (s *GenerateService) GeneratePodcast(ctx context.Context, req *domain.GenerateRequest) (*domain.Podcast, error) {
	query := buildArtifactQuery(req.Subject, req.Topic)
	contextBlock := s.selector.Select(ctx, query, true, nil, topKPodcast)

	prompt := fmt.Sprintf(podcastPromptTemplate, req.Subject, topicClause(req.Topic), contextClause(contextBlock))
	transcript, err := s.llm.Complete(ctx, "", prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	podcast := &domain.Podcast{
		ID:         uuid.New().String(),
		Title:      artifactTitle(req.Subject, req.Topic),
		Subject:    req.Subject,
		Transcript: transcript,
		CreatedAt:  time.Now(),
	}

	if s.tts != nil {
		audio, synthErr := s.tts.Synthesize(ctx, transcript)
		if synthErr != nil {
			s.log.Warn("speech synthesis failed, keeping transcript-only podcast",
				zap.String("podcast_id", podcast.ID), zap.Error(synthErr))
		} else {
			relPath, saveErr := s.podcasts.SaveAudio(podcast.ID, audio)
			if saveErr != nil {
				s.log.Warn("failed to save podcast audio",
					zap.String("podcast_id", podcast.ID), zap.Error(saveErr))
			} else {
				podcast.AudioPath = relPath
			}
		}
	}

	if err := s.podcasts.Save(podcast.ID, podcast); err != nil {
		return nil, fmt.Errorf("failed to save podcast: %w", err)
	}
	return podcast, nil
}

// ListMindMaps returns every stored mind map
func (s *GenerateService) ListMindMaps() ([]*domain.MindMap, error) { return s.mindmaps.List() }

// GetMindMap returns a mind map by id
func (s *GenerateService) GetMindMap(id string) (*domain.MindMap, error) { return s.mindmaps.Get(id) }

// ListModules returns every stored learning module
func (s *GenerateService) ListModules() ([]*domain.StudyModule, error) { return s.modules.List() }

// GetModule returns a learning module by id
func (s *GenerateService) GetModule(id string) (*domain.StudyModule, error) { return s.modules.Get(id) }

// ListPodcasts returns every stored podcast
func (s *GenerateService) ListPodcasts() ([]*domain.Podcast, error) { return s.podcasts.List() }

// GetPodcast returns a podcast by id
func (s *GenerateService) GetPodcast(id string) (*domain.Podcast, error) { return s.podcasts.Get(id) }

// PodcastAudioPath resolves the on-disk audio path for a podcast, or an
// error when no audio exists.
func (s *GenerateService) PodcastAudioPath(id string) (string, error) {
	podcast, err := s.podcasts.Get(id)
	if err != nil {
		return "", err
	}
	if podcast.AudioPath == "" {
		return "", domain.ErrNotFound
	}
	return s.podcasts.AudioFilePath(podcast.AudioPath), nil
}

func artifactTitle(subject, topic string) string {
	if topic == "" {
		return subject
	}
	return subject + ": " + topic
}
