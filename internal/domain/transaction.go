package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionSource records which input channel produced a transaction.
const (
	SourceVoice  = "voice"
	SourceOCR    = "ocr"
	SourceManual = "manual"
)

// Transaction is a completed sale persisted by the surrounding
// application. Items are stored as a JSON document since their shape
// depends on the input channel.
type Transaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Items           []ExtractedItem `json:"items" db:"-"`
	PaymentMode     PaymentMode     `json:"payment_mode" db:"payment_mode"`
	TotalAmount     float64         `json:"total_amount" db:"total_amount"`
	Source          string          `json:"source" db:"source"`
	ConfidenceScore float64         `json:"confidence_score" db:"confidence_score"`
	RawTranscript   string          `json:"raw_transcript,omitempty" db:"raw_transcript"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// PaymentModeTotals aggregates one payment rail within a daily summary.
type PaymentModeTotals struct {
	Count        int           `json:"count"`
	Total        float64       `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

// DailySummary is the end-of-day cash vs UPI reconciliation view.
type DailySummary struct {
	Date              string            `json:"date"`
	TotalTransactions int               `json:"total_transactions"`
	Cash              PaymentModeTotals `json:"cash"`
	UPI               PaymentModeTotals `json:"upi"`
}

// ValidPaymentMode reports whether s is one of the accepted rails.
func ValidPaymentMode(s string) bool {
	return s == string(PaymentCash) || s == string(PaymentUPI)
}
