package domain

// SummaryMode selects how uploaded material is rewritten.
type SummaryMode string

const (
	ModeSummarize SummaryMode = "summarize"
	ModeElaborate SummaryMode = "elaborate"
	ModeLearn     SummaryMode = "learn"
)

// ParseSummaryMode maps a raw mode string to a SummaryMode. Unrecognized
// values fall back to ModeSummarize; this is the single place that
// policy lives so every endpoint behaves the same way.
func ParseSummaryMode(raw string) SummaryMode {
	switch SummaryMode(raw) {
	case ModeSummarize, ModeElaborate, ModeLearn:
		return SummaryMode(raw)
	default:
		return ModeSummarize
	}
}

// SummarizeTextRequest is the request to summarize raw text
type SummarizeTextRequest struct {
	Text string `json:"text" binding:"required"`
	Mode string `json:"mode,omitempty"`
}

// SummaryResponse is the response from a summary call
type SummaryResponse struct {
	Mode   SummaryMode `json:"mode"`
	Result string      `json:"result"`
}
