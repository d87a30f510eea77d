package service

import (
	"context"
	"errors"
	"testing"

	"examprep/internal/domain"
	"examprep/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingSynthesizer raises on every attempt
type failingSynthesizer struct {
	calls int
}

func (f *failingSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	f.calls++
	return nil, errors.New("voice api unreachable")
}

type fixedSynthesizer struct {
	audio []byte
}

func (f *fixedSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, nil
}

func newTestGenerateService(t *testing.T, llm Generator, synth Synthesizer) (*GenerateService, string) {
	t.Helper()
	dir := t.TempDir()
	return NewGenerateService(
		&fakeSelector{},
		llm,
		synth,
		repository.NewMindMapStore(dir, zap.NewNop()),
		repository.NewModuleStore(dir, zap.NewNop()),
		repository.NewPodcastStore(dir, zap.NewNop()),
		zap.NewNop(),
	), dir
}

const mindMapJSON = `{
  "title": "Linear Algebra",
  "root_node": {"id": "root", "label": "Linear Algebra", "children": ["vec", "mat"]},
  "nodes": {
    "root": {"id": "root", "label": "Linear Algebra", "children": ["vec", "mat"]},
    "vec": {"id": "vec", "label": "Vectors"},
    "mat": {"id": "mat", "label": "Matrices"}
  }
}`

func TestGenerateMindMapFromFencedOutput(t *testing.T) {
	llm := &fakeGenerator{completeReply: "Here you go:\n```json\n" + mindMapJSON + "\n```"}
	svc, _ := newTestGenerateService(t, llm, nil)

	mindMap, err := svc.GenerateMindMap(context.Background(), &domain.GenerateRequest{Subject: "Linear Algebra"})
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", mindMap.Title)
	assert.Equal(t, "root", mindMap.Root.ID)
	assert.Len(t, mindMap.Nodes, 3)

	// Persisted under its fresh identifier.
	loaded, err := svc.GetMindMap(mindMap.ID)
	require.NoError(t, err)
	assert.Equal(t, mindMap.Nodes, loaded.Nodes)
}

func TestGenerateMindMapRejectsDanglingChildren(t *testing.T) {
	bad := `{"root_node":{"id":"root","label":"X","children":["ghost"]},"nodes":{"root":{"id":"root","label":"X","children":["ghost"]}}}`
	llm := &fakeGenerator{completeReply: bad}
	svc, _ := newTestGenerateService(t, llm, nil)

	_, err := svc.GenerateMindMap(context.Background(), &domain.GenerateRequest{Subject: "X"})
	var validation *domain.MindMapValidationError
	require.ErrorAs(t, err, &validation)

	// Nothing persisted on validation failure.
	maps, listErr := svc.ListMindMaps()
	require.NoError(t, listErr)
	assert.Empty(t, maps)
}

func TestGenerateMindMapMalformedOutput(t *testing.T) {
	llm := &fakeGenerator{completeReply: "I could not produce a mind map, sorry."}
	svc, _ := newTestGenerateService(t, llm, nil)

	_, err := svc.GenerateMindMap(context.Background(), &domain.GenerateRequest{Subject: "X"})
	var malformed *domain.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
}

func TestGenerateMindMapBackfillsNodeIDs(t *testing.T) {
	// Models often omit the redundant id field inside the node mapping.
	payload := `{"root_node":{"id":"root","label":"X","children":["a"]},"nodes":{"root":{"label":"X","children":["a"]},"a":{"label":"A"}}}`
	llm := &fakeGenerator{completeReply: payload}
	svc, _ := newTestGenerateService(t, llm, nil)

	mindMap, err := svc.GenerateMindMap(context.Background(), &domain.GenerateRequest{Subject: "X"})
	require.NoError(t, err)
	assert.Equal(t, "a", mindMap.Nodes["a"].ID)
}

func TestGenerateModule(t *testing.T) {
	llm := &fakeGenerator{completeReply: "## Introduction\nBayes' theorem..."}
	svc, _ := newTestGenerateService(t, llm, nil)

	module, err := svc.GenerateModule(context.Background(), &domain.GenerateRequest{Subject: "Statistics", Topic: "Bayes"})
	require.NoError(t, err)
	assert.Equal(t, "Statistics: Bayes", module.Title)
	assert.Contains(t, module.Content, "Bayes' theorem")

	loaded, err := svc.GetModule(module.ID)
	require.NoError(t, err)
	assert.Equal(t, module.Content, loaded.Content)
}

func TestGeneratePodcastDegradesWhenTTSFails(t *testing.T) {
	llm := &fakeGenerator{completeReply: "Alex: Welcome back!\nSam: Today, probability."}
	synth := &failingSynthesizer{}
	svc, _ := newTestGenerateService(t, llm, synth)

	podcast, err := svc.GeneratePodcast(context.Background(), &domain.GenerateRequest{Subject: "Probability"})
	require.NoError(t, err, "synthesis failure must not fail the request")
	assert.NotEmpty(t, podcast.Transcript)
	assert.Empty(t, podcast.AudioPath)
	assert.Equal(t, 1, synth.calls)

	loaded, err := svc.GetPodcast(podcast.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.AudioPath)
}

func TestGeneratePodcastWithAudio(t *testing.T) {
	llm := &fakeGenerator{completeReply: "Alex: Hello.\nSam: Hi."}
	svc, _ := newTestGenerateService(t, llm, &fixedSynthesizer{audio: []byte("mp3")})

	podcast, err := svc.GeneratePodcast(context.Background(), &domain.GenerateRequest{Subject: "Sets"})
	require.NoError(t, err)
	assert.Equal(t, "audio/"+podcast.ID+".mp3", podcast.AudioPath)

	path, err := svc.PodcastAudioPath(podcast.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestPodcastAudioPathMissingAudio(t *testing.T) {
	llm := &fakeGenerator{completeReply: "script"}
	svc, _ := newTestGenerateService(t, llm, &failingSynthesizer{})

	podcast, err := svc.GeneratePodcast(context.Background(), &domain.GenerateRequest{Subject: "Sets"})
	require.NoError(t, err)

	_, err = svc.PodcastAudioPath(podcast.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateFailurePropagates(t *testing.T) {
	llm := &fakeGenerator{err: errors.New("model overloaded")}
	svc, _ := newTestGenerateService(t, llm, nil)

	_, err := svc.GenerateModule(context.Background(), &domain.GenerateRequest{Subject: "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
}
