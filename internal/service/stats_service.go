package service

import (
	"examprep/internal/domain"
	"examprep/internal/repository"
)

// StatsService reports entity counts across the stores
type StatsService struct {
	sessions *repository.SessionStore
	papers   *repository.PaperStore
	mindmaps *repository.MindMapStore
	modules  *repository.ModuleStore
	podcasts *repository.PodcastStore
}

// NewStatsService creates a new stats service
func NewStatsService(
	sessions *repository.SessionStore,
	papers *repository.PaperStore,
	mindmaps *repository.MindMapStore,
	modules *repository.ModuleStore,
	podcasts *repository.PodcastStore,
) *StatsService {
	return &StatsService{
		sessions: sessions,
		papers:   papers,
		mindmaps: mindmaps,
		modules:  modules,
		podcasts: podcasts,
	}
}

// Stats counts loadable entities per kind
func (s *StatsService) Stats() (*domain.Stats, error) {
	stats := &domain.Stats{}

	sessions, err := s.sessions.List()
	if err != nil {
		return nil, err
	}
	stats.TotalSessions = len(sessions)

	papers, err := s.papers.List()
	if err != nil {
		return nil, err
	}
	stats.TotalPapers = len(papers)

	mindmaps, err := s.mindmaps.List()
	if err != nil {
		return nil, err
	}
	stats.TotalMindMaps = len(mindmaps)

	modules, err := s.modules.List()
	if err != nil {
		return nil, err
	}
	stats.TotalModules = len(modules)

	podcasts, err := s.podcasts.List()
	if err != nil {
		return nil, err
	}
	stats.TotalPodcasts = len(podcasts)

	return stats, nil
}
