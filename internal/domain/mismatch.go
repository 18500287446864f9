package domain

// MismatchSeverity grades a detected discrepancy.
type MismatchSeverity string

const (
	SeverityHigh   MismatchSeverity = "high"
	SeverityMedium MismatchSeverity = "medium"
)

// TransactionSummary is the comparable shape used by mismatch
// detection: what was expected vs what was actually recorded.
type TransactionSummary struct {
	PaymentMode PaymentMode `json:"payment_mode"`
	TotalAmount float64     `json:"total_amount"`
}

// FieldMismatch records a single field-level discrepancy.
type FieldMismatch struct {
	Field         string           `json:"field"`
	ExpectedValue any              `json:"expected_value"`
	ActualValue   any              `json:"actual_value"`
	Severity      MismatchSeverity `json:"severity"`
}

// MismatchReport is the result of comparing two transaction summaries.
// Confidence is exactly 1.0 when the summaries agree and 0.5 otherwise;
// it is not scaled by the magnitude of any difference.
type MismatchReport struct {
	HasMismatch bool            `json:"has_mismatch"`
	Mismatches  []FieldMismatch `json:"mismatches"`
	Suggestion  string          `json:"suggestion"`
	Confidence  float64         `json:"confidence"`
}
