package service

import (
	"context"
	"fmt"
	"strings"

	"examprep/internal/domain"
	"examprep/internal/repository"
	"go.uber.org/zap"
)

const (
	titlePromptInputLimit = 100
	titleMaxLen           = 50
)

// ChatService handles conversational turns against the LLM with
// retrieval-augmented context and per-session history.
type ChatService struct {
	sessions *repository.SessionStore
	selector ContextSelector
	llm      Generator
	log      *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	sessions *repository.SessionStore,
	selector ContextSelector,
	llm Generator,
	log *zap.Logger,
) *ChatService {
	return &ChatService{
		sessions: sessions,
		selector: selector,
		llm:      llm,
		log:      log,
	}
}

// Chat runs one conversational turn: load or create the session, select
// context, call the model with the full history, append the reply and
// persist.
func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	var session *domain.Session
	var err error

	if req.SessionID != "" {
		session, err = s.sessions.Get(req.SessionID)
		if err != nil {
			return nil, err
		}
	} else {
		session, err = s.sessions.Create("")
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
		session.Domain = req.Domain
	}

	contextBlock := s.selector.Select(ctx, req.Message, req.WantsContext(), req.ContextChunks, topKChat)

	messages := make([]domain.Message, 0, len(session.Messages)+2)
	messages = append(messages, domain.Message{Role: domain.RoleSystem, Content: chatPreamble})
	messages = append(messages, session.Messages...)

	query := req.Message
	if contextBlock != "" {
		query = fmt.Sprintf(contextualQueryTemplate, contextBlock, req.Message)
	}
	messages = append(messages, domain.Message{Role: domain.RoleUser, Content: query})

	answer, err := s.llm.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	// The stored history keeps the raw question, not the context-wrapped
	// prompt.
	session.Append(domain.RoleUser, req.Message)
	session.Append(domain.RoleAssistant, answer)

	if len(session.Messages) == 2 {
		s.UpdateTitle(ctx, session)
	}

	if err := s.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &domain.ChatResponse{
		SessionID: session.ID,
		Answer:    answer,
		Title:     session.Title,
	}, nil
}

// UpdateTitle generates a session title from the first user message.
// Sessions that already carry a generated title, or have fewer than two
// messages, are left untouched. The session is mutated but not
// persisted; callers are responsible for saving.
func (s *ChatService) UpdateTitle(ctx context.Context, session *domain.Session) string {
	if session.Title != domain.DefaultTitle || len(session.Messages) < 2 {
		return session.Title
	}

	var first string
	for _, msg := range session.Messages {
		if msg.Role == domain.RoleUser {
			first = msg.Content
			break
		}
	}
	if first == "" {
		return session.Title
	}
	if runes := []rune(first); len(runes) > titlePromptInputLimit {
		first = string(runes[:titlePromptInputLimit])
	}

	title, err := s.llm.Complete(ctx, "", fmt.Sprintf(titlePromptTemplate, first))
	if err != nil {
		s.log.Warn("title generation failed, keeping default", zap.Error(err))
		return session.Title
	}

	title = strings.TrimSpace(title)
	title = strings.Trim(title, `"'`)
	title = strings.TrimSpace(title)
	if title == "" {
		return session.Title
	}
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen-3]) + "..."
	}

	session.Title = title
	return title
}

// ListSessions returns every loadable session
func (s *ChatService) ListSessions() ([]*domain.Session, error) {
	return s.sessions.List()
}

// GetSession returns a session by id
func (s *ChatService) GetSession(id string) (*domain.Session, error) {
	return s.sessions.Get(id)
}

// DeleteSession removes a session; a missing session is an error
func (s *ChatService) DeleteSession(id string) error {
	return s.sessions.Delete(id)
}
