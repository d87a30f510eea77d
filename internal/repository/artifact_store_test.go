package repository

import (
	"os"
	"testing"
	"time"

	"examprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMindMapRoundTrip(t *testing.T) {
	store := NewMindMapStore(t.TempDir(), zap.NewNop())

	root := domain.MindMapNode{ID: "root", Label: "Calculus", Children: []string{"a", "b"}}
	mindMap := &domain.MindMap{
		ID:      "m1",
		Title:   "Calculus",
		Subject: "Mathematics",
		Root:    root,
		Nodes: map[string]domain.MindMapNode{
			"root": root,
			"a":    {ID: "a", Label: "Limits"},
			"b":    {ID: "b", Label: "Derivatives"},
		},
		CreatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Save(mindMap.ID, mindMap))

	loaded, err := store.Get("m1")
	require.NoError(t, err)
	assert.Equal(t, mindMap.Root, loaded.Root)
	assert.Equal(t, mindMap.Nodes, loaded.Nodes)
	assert.Equal(t, mindMap.Title, loaded.Title)
}

func TestPodcastAudioPaths(t *testing.T) {
	dir := t.TempDir()
	store := NewPodcastStore(dir, zap.NewNop())

	relPath, err := store.SaveAudio("p1", []byte("mp3-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "audio/p1.mp3", relPath)

	contents, err := os.ReadFile(store.AudioFilePath(relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), contents)
}

func TestPaperStoreKeepsOriginalFile(t *testing.T) {
	store := NewPaperStore(t.TempDir(), zap.NewNop())

	path, err := store.SaveFile("paper1", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), contents)

	paper := &domain.ExamPaper{ID: "paper1", Filename: "algebra.pdf", PageCount: 3}
	require.NoError(t, store.Save(paper.ID, paper))

	loaded, err := store.Get("paper1")
	require.NoError(t, err)
	assert.Equal(t, "algebra.pdf", loaded.Filename)
}
