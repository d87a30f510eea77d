package service

import (
	"context"
	"fmt"
	"strings"

	"examprep/internal/domain"
	"examprep/internal/pdf"
)

// SummaryService rewrites uploaded material in one of the closed set of
// modes: Summarize, Elaborate or Learn. Unrecognized modes default to
// Summarize everywhere (see domain.ParseSummaryMode).
type SummaryService struct {
	llm Generator
}

// NewSummaryService creates a new summary service
func NewSummaryService(llm Generator) *SummaryService {
	return &SummaryService{llm: llm}
}

// SummarizePDF extracts the document's text and rewrites it in the
// requested mode.
func (s *SummaryService) SummarizePDF(ctx context.Context, filename string, contents []byte, mode string) (*domain.SummaryResponse, error) {
	if err := ValidatePDFUpload(filename, contents); err != nil {
		return nil, err
	}
	text, _, err := pdf.Text(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return s.summarize(ctx, text, mode)
}

// SummarizeText rewrites raw text in the requested mode
func (s *SummaryService) SummarizeText(ctx context.Context, text, mode string) (*domain.SummaryResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", domain.ErrInvalidRequest)
	}
	return s.summarize(ctx, text, mode)
}

func (s *SummaryService) summarize(ctx context.Context, text, rawMode string) (*domain.SummaryResponse, error) {
	mode := domain.ParseSummaryMode(rawMode)
	result, err := s.llm.Complete(ctx, "", fmt.Sprintf(summaryPrompts[mode], text))
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	return &domain.SummaryResponse{Mode: mode, Result: result}, nil
}
