package dto

import "errors"

// Custom errors
var (
	ErrNoTextContent   = errors.New("no extractable text content in document")
	ErrSessionNotFound = errors.New("chat session not found or expired")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SlipParseResponse is returned after parsing an uploaded salary slip.
type SlipParseResponse struct {
	SalarySlip     SalarySlipData    `json:"salary_slip"`
	MissingFields  []string          `json:"missing_fields"`
	MissingLabels  []string          `json:"missing_labels"`
	Confidence     ParsingConfidence `json:"parsing_confidence"`
	ProcessedAt    string            `json:"processed_at"`
}

// TaxCalculationResponse bundles the comparison with the advisor layer and a
// chat session the client can continue the conversation on.
type TaxCalculationResponse struct {
	Result        TaxComparisonResult `json:"result"`
	Insights      AIInsights          `json:"insights"`
	ChatSessionID string              `json:"chat_session_id,omitempty"`
	FinancialYear string              `json:"financial_year"`
}

// ChatResponse is the advisor's reply to one chat turn.
type ChatResponse struct {
	SessionID   string   `json:"session_id"`
	Reply       string   `json:"reply"`
	AIGenerated bool     `json:"ai_generated"`
	Suggested   []string `json:"suggested_questions,omitempty"`
}
