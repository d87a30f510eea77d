package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"examprep/internal/domain"
	"go.uber.org/zap"
)

// MindMapStore persists generated mind maps
type MindMapStore struct {
	*fileStore[domain.MindMap]
}

// NewMindMapStore creates a new mind map store under dataDir
func NewMindMapStore(dataDir string, log *zap.Logger) *MindMapStore {
	return &MindMapStore{newFileStore[domain.MindMap](filepath.Join(dataDir, "mindmaps"), log)}
}

// ModuleStore persists generated learning modules
type ModuleStore struct {
	*fileStore[domain.StudyModule]
}

// NewModuleStore creates a new learning module store under dataDir
func NewModuleStore(dataDir string, log *zap.Logger) *ModuleStore {
	return &ModuleStore{newFileStore[domain.StudyModule](filepath.Join(dataDir, "modules"), log)}
}

// PaperStore persists exam paper metadata records plus the uploaded
// files themselves.
type PaperStore struct {
	*fileStore[domain.ExamPaper]
	filesDir string
}

// NewPaperStore creates a new exam paper store under dataDir
func NewPaperStore(dataDir string, log *zap.Logger) *PaperStore {
	return &PaperStore{
		fileStore: newFileStore[domain.ExamPaper](filepath.Join(dataDir, "papers"), log),
		filesDir:  filepath.Join(dataDir, "papers", "files"),
	}
}

// SaveFile stores the original uploaded document next to the metadata
// records, named by paper id.
func (s *PaperStore) SaveFile(id string, contents []byte) (string, error) {
	if err := os.MkdirAll(s.filesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create files directory: %w", err)
	}
	path := filepath.Join(s.filesDir, id+".pdf")
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return path, nil
}

// PodcastStore persists podcasts and their audio files
type PodcastStore struct {
	*fileStore[domain.Podcast]
	audioDir string
}

// NewPodcastStore creates a new podcast store under dataDir
func NewPodcastStore(dataDir string, log *zap.Logger) *PodcastStore {
	return &PodcastStore{
		fileStore: newFileStore[domain.Podcast](filepath.Join(dataDir, "podcasts"), log),
		audioDir:  filepath.Join(dataDir, "audio"),
	}
}

// SaveAudio writes synthesized audio named by podcast id and returns the
// path stored on the podcast record, relative to the data directory.
func (s *PodcastStore) SaveAudio(id string, audio []byte) (string, error) {
	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}
	path := filepath.Join(s.audioDir, id+".mp3")
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return "", fmt.Errorf("failed to save audio file: %w", err)
	}
	return filepath.Join("audio", id+".mp3"), nil
}

// AudioFilePath resolves a stored relative audio path against the audio
// directory's parent.
func (s *PodcastStore) AudioFilePath(relPath string) string {
	return filepath.Join(filepath.Dir(s.audioDir), relPath)
}
