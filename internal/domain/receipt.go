package domain

// PaymentMode is how the customer paid. The shop accepts exactly two
// rails: physical cash and UPI.
type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentUPI  PaymentMode = "upi"
)

// ParsedItem is one priced line item extracted from OCR receipt text.
// Items are kept in receipt line order and are never re-sorted.
//
// Quantity is always >= 1 and UnitPrice > 0; MatchReason is set only
// when Matched is true. Suggestions accompany unmatched items so the
// operator can pick a correction by hand.
type ParsedItem struct {
	ProductName     string       `json:"product_name"`
	OriginalOCRText string       `json:"original_ocr_text"`
	Quantity        int          `json:"quantity"`
	UnitPrice       float64      `json:"price"`
	LineTotal       float64      `json:"line_total"`
	Confidence      float64      `json:"confidence"`
	Matched         bool         `json:"matched_from_db"`
	MatchReason     MatchReason  `json:"match_reason,omitempty"`
	ProductID       int64        `json:"product_id,omitempty"`
	CatalogPrice    float64      `json:"db_price,omitempty"`
	Suggestions     []Suggestion `json:"suggestions,omitempty"`
	RawLine         string       `json:"raw_line"`
}

// ReceiptParseResult is the outcome of parsing a full receipt text.
//
// ExtractedTotal is the total printed on the receipt footer, when one
// was found; CalculatedTotal is the sum of line totals. A disagreement
// beyond TotalTolerance is advisory only (TotalMismatch) and never
// invalidates the parse.
type ReceiptParseResult struct {
	Items           []ParsedItem `json:"items"`
	CalculatedTotal float64      `json:"calculated_total"`
	ExtractedTotal  *float64     `json:"extracted_total,omitempty"`
	PaymentMode     PaymentMode  `json:"payment_mode"`
	AvgConfidence   float64      `json:"total_confidence"`
	MatchedCount    int          `json:"matched_count"`
	TotalCount      int          `json:"total_count"`
	MatchRate       float64      `json:"match_rate"`
	TotalMismatch   bool         `json:"total_mismatch"`
	RawText         string       `json:"raw_text"`
}
