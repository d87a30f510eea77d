package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"examprep/internal/domain"
	"examprep/internal/pdf"
	"examprep/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// minPDFBytes rejects empty and truncated uploads before extraction
const minPDFBytes = 100

// IngestService handles exam paper uploads: text extraction, chunk
// storage and the metadata record.
type IngestService struct {
	papers *repository.PaperStore
	chunks ChunkWriter
	log    *zap.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService(papers *repository.PaperStore, chunks ChunkWriter, log *zap.Logger) *IngestService {
	return &IngestService{
		papers: papers,
		chunks: chunks,
		log:    log,
	}
}

// ValidatePDFUpload rejects non-PDF and empty or too-small uploads with
// a descriptive error before any processing.
func ValidatePDFUpload(filename string, contents []byte) error {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return fmt.Errorf("%w: only PDF files are supported", domain.ErrInvalidRequest)
	}
	if len(contents) < minPDFBytes {
		return fmt.Errorf("%w: file is empty or too small to be a valid PDF", domain.ErrInvalidRequest)
	}
	return nil
}

// UploadPaper extracts the paper's text, stores it as tagged chunks and
// persists the metadata record plus the original file. A failing chunk
// store degrades to a record with zero chunks rather than failing the
// upload.
func (s *IngestService) UploadPaper(ctx context.Context, filename string, contents []byte, subject string, year int) (*domain.ExamPaper, error) {
	if err := ValidatePDFUpload(filename, contents); err != nil {
		return nil, err
	}

	text, pageCount, err := pdf.Text(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	chunkCount, err := s.chunks.Store(ctx, text, filename, paperTags(filename, subject))
	if err != nil {
		s.log.Warn("chunk storage failed, paper will not be searchable",
			zap.String("filename", filename), zap.Error(err))
		chunkCount = 0
	}

	paper := &domain.ExamPaper{
		ID:         uuid.New().String(),
		Filename:   filename,
		Subject:    subject,
		Year:       year,
		PageCount:  pageCount,
		ChunkCount: chunkCount,
		UploadedAt: time.Now(),
	}

	if _, err := s.papers.SaveFile(paper.ID, contents); err != nil {
		return nil, err
	}
	if err := s.papers.Save(paper.ID, paper); err != nil {
		return nil, fmt.Errorf("failed to save paper record: %w", err)
	}
	return paper, nil
}

// paperTags builds the chunk tags for an uploaded paper
func paperTags(filename, subject string) map[string]any {
	tags := map[string]any{
		domain.TagSource:   "pdf",
		domain.TagFilename: filename,
	}
	if subject != "" {
		tags[domain.TagSubject] = subject
	}
	return tags
}

// ListPapers returns every stored paper record
func (s *IngestService) ListPapers() ([]*domain.ExamPaper, error) {
	return s.papers.List()
}

// GetPaper returns a paper record by id
func (s *IngestService) GetPaper(id string) (*domain.ExamPaper, error) {
	return s.papers.Get(id)
}
