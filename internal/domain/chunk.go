package domain

// Metadata keys attached to stored chunks
const (
	TagSource   = "source"
	TagFilename = "filename"
	TagSubject  = "subject"
)

// Chunk is a bounded span of source text plus descriptive tags, the unit
// of similarity search. Identity is implicit; chunks are immutable once
// stored.
type Chunk struct {
	Content string         `json:"content"`
	Tags    map[string]any `json:"tags,omitempty"`
	Score   float64        `json:"score,omitempty"`
}
