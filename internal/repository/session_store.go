package repository

import (
	"path/filepath"
	"time"

	"examprep/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore handles session persistence, one JSON file per session
type SessionStore struct {
	*fileStore[domain.Session]
}

// NewSessionStore creates a new session store under dataDir
func NewSessionStore(dataDir string, log *zap.Logger) *SessionStore {
	return &SessionStore{newFileStore[domain.Session](filepath.Join(dataDir, "sessions"), log)}
}

// Create allocates a new session with an optional seed user message and
// persists it immediately.
func (s *SessionStore) Create(firstMessage string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		Title:     domain.DefaultTitle,
		Messages:  []domain.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if firstMessage != "" {
		session.Append(domain.RoleUser, firstMessage)
	}
	if err := s.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Save persists the session, refreshing its updated timestamp
func (s *SessionStore) Save(session *domain.Session) error {
	session.UpdatedAt = time.Now()
	return s.fileStore.Save(session.ID, session)
}
