package domain

import "time"

// ExamPaper is the metadata record for an ingested exam paper or study
// PDF. The original file is retained on disk next to the record.
type ExamPaper struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Subject    string    `json:"subject,omitempty"`
	Year       int       `json:"year,omitempty"`
	PageCount  int       `json:"page_count"`
	ChunkCount int       `json:"chunk_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Stats represents entity counts across the stores
type Stats struct {
	TotalSessions int `json:"total_sessions"`
	TotalPapers   int `json:"total_papers"`
	TotalMindMaps int `json:"total_mind_maps"`
	TotalModules  int `json:"total_modules"`
	TotalPodcasts int `json:"total_podcasts"`
}
