package usecase

import (
	"math"

	"github.com/kiranabill/backend/internal/domain"
)

// amountTolerance is the absolute difference in total amount tolerated
// before reconciliation flags a mismatch.
const amountTolerance = 10.0

const (
	mismatchSuggestion = "Please verify the transaction details"
	matchSuggestion    = "Transaction looks correct"
)

// DetectMismatch compares an expected and an actual transaction
// summary field by field. Payment-mode inequality and a total-amount
// difference beyond the tolerance are both high severity. Confidence
// is exactly 1.0 when nothing mismatches and exactly 0.5 otherwise,
// regardless of how large the difference is.
func DetectMismatch(expected, actual domain.TransactionSummary) *domain.MismatchReport {
	var mismatches []domain.FieldMismatch

	if expected.PaymentMode != actual.PaymentMode {
		mismatches = append(mismatches, domain.FieldMismatch{
			Field:         "payment_mode",
			ExpectedValue: expected.PaymentMode,
			ActualValue:   actual.PaymentMode,
			Severity:      domain.SeverityHigh,
		})
	}

	if math.Abs(expected.TotalAmount-actual.TotalAmount) > amountTolerance {
		mismatches = append(mismatches, domain.FieldMismatch{
			Field:         "total_amount",
			ExpectedValue: expected.TotalAmount,
			ActualValue:   actual.TotalAmount,
			Severity:      domain.SeverityHigh,
		})
	}

	report := &domain.MismatchReport{
		HasMismatch: len(mismatches) > 0,
		Mismatches:  mismatches,
		Suggestion:  matchSuggestion,
		Confidence:  1.0,
	}
	if report.HasMismatch {
		report.Suggestion = mismatchSuggestion
		report.Confidence = 0.5
	}
	return report
}
