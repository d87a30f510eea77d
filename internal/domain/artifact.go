package domain

import "time"

// MindMapNode is a single node in a mind map. Children reference node
// identifiers that must exist within the same map's node mapping.
type MindMapNode struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Children    []string `json:"children,omitempty"`
}

// MindMap represents a generated concept graph
type MindMap struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Subject   string                 `json:"subject"`
	Root      MindMapNode            `json:"root_node"`
	Nodes     map[string]MindMapNode `json:"nodes"`
	CreatedAt time.Time              `json:"created_at"`
}

// StudyModule represents a generated learning module
type StudyModule struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Podcast represents a generated narrated podcast. AudioPath is empty
// when synthesis was unavailable and only the transcript exists.
type Podcast struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Transcript string    `json:"transcript"`
	AudioPath  string    `json:"audio_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// GenerateRequest is the request to generate an artifact
type GenerateRequest struct {
	Subject string `json:"subject" binding:"required"`
	Topic   string `json:"topic,omitempty"`
}
