package domain

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// DefaultTitle is the title a session carries until the first exchange
// has completed and a real title has been generated.
const DefaultTitle = "New Chat"

// Session represents a persisted conversation
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Domain    string    `json:"domain,omitempty"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents a single chat message. Messages are append-only
// within a session and their order is meaningful.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// Append adds a message to the session
func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// ChatRequest is the request to send a chat message
type ChatRequest struct {
	SessionID     string   `json:"session_id,omitempty"`
	Message       string   `json:"message" binding:"required"`
	Domain        string   `json:"domain,omitempty"`
	UseContext    *bool    `json:"use_context,omitempty"`
	ContextChunks []string `json:"context_chunks,omitempty"`
}

// WantsContext reports whether retrieval should run; defaults to true
// when the field is omitted.
func (r *ChatRequest) WantsContext() bool {
	if r.UseContext == nil {
		return true
	}
	return *r.UseContext
}

// ChatResponse is the response from a chat message
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
	Title     string `json:"title"`
}
