package service

import (
	"context"
	"testing"

	"examprep/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTextUsesRequestedMode(t *testing.T) {
	llm := &fakeGenerator{completeReply: "elaborated text"}
	svc := NewSummaryService(llm)

	resp, err := svc.SummarizeText(context.Background(), "the central limit theorem", "elaborate")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeElaborate, resp.Mode)
	assert.Equal(t, "elaborated text", resp.Result)

	require.Len(t, llm.completeCalls, 1)
	assert.Contains(t, llm.completeCalls[0], "the central limit theorem")
	assert.Contains(t, llm.completeCalls[0], "elaborate")
}

func TestSummarizeTextDefaultsUnknownMode(t *testing.T) {
	llm := &fakeGenerator{completeReply: "summary"}
	svc := NewSummaryService(llm)

	resp, err := svc.SummarizeText(context.Background(), "some text", "expand-on-this")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSummarize, resp.Mode)
}

func TestSummarizeTextRejectsEmptyInput(t *testing.T) {
	svc := NewSummaryService(&fakeGenerator{})

	_, err := svc.SummarizeText(context.Background(), "   ", "summarize")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestParseSummaryModePolicy(t *testing.T) {
	assert.Equal(t, domain.ModeSummarize, domain.ParseSummaryMode("summarize"))
	assert.Equal(t, domain.ModeElaborate, domain.ParseSummaryMode("elaborate"))
	assert.Equal(t, domain.ModeLearn, domain.ParseSummaryMode("learn"))
	assert.Equal(t, domain.ModeSummarize, domain.ParseSummaryMode(""))
	assert.Equal(t, domain.ModeSummarize, domain.ParseSummaryMode("LEARN"))
}
