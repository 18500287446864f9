package usecase

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/kiranabill/backend/internal/domain"
)

// totalTolerance is the advisory tolerance, in currency units, between
// the total printed on the receipt and the sum of extracted line
// totals. Exceeding it flags the result but never invalidates it.
const totalTolerance = 5.0

// unmatchedConfidence is assigned to items the matcher could not place
// in the catalog; the operator reviews these by hand.
const unmatchedConfidence = 0.5

// ReceiptService turns raw OCR receipt text into structured, priced,
// catalog-matched line items.
type ReceiptService struct {
	matcher            *ProductMatcher
	enableDebugLogging bool
}

// NewReceiptService creates a receipt parsing service.
func NewReceiptService(config MatcherConfig) *ReceiptService {
	return &ReceiptService{
		matcher:            NewProductMatcher(config),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseReceipt scans receipt text line by line, in order. Item lines
// become ParsedItems whether or not they match the catalog; footer
// lines contribute the printed total (last "total" line wins) and the
// payment mode (last qualifying line wins, default cash). Unparsable
// lines are skipped, never fatal.
func (s *ReceiptService) ParseReceipt(text string, catalog []domain.CatalogProduct) *domain.ReceiptParseResult {
	lines := strings.Split(text, "\n")

	var items []domain.ParsedItem
	var extractedTotal *float64
	paymentMode := domain.PaymentCash

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch classifyLine(line) {
		case lineItem:
			if item, ok := s.extractItem(line, catalog); ok {
				items = append(items, item)
			}
		case lineFooter:
			lower := strings.ToLower(line)

			if strings.Contains(lower, "total") && !strings.Contains(lower, "subtotal") {
				if m := numberRegex.FindString(line); m != "" {
					if total, err := strconv.ParseFloat(m, 64); err == nil {
						extractedTotal = &total
					}
				}
			}

			if strings.Contains(lower, "upi") || strings.Contains(lower, "online") {
				paymentMode = domain.PaymentUPI
			} else if strings.Contains(lower, "cash") {
				paymentMode = domain.PaymentCash
			}
		}
	}

	var calculatedTotal, confidenceSum float64
	matchedCount := 0
	for _, item := range items {
		calculatedTotal += item.LineTotal
		confidenceSum += item.Confidence
		if item.Matched {
			matchedCount++
		}
	}

	avgConfidence := 0.0
	matchRate := 0.0
	if len(items) > 0 {
		avgConfidence = confidenceSum / float64(len(items))
		matchRate = float64(matchedCount) / float64(len(items))
	}

	totalMismatch := false
	if extractedTotal != nil && math.Abs(*extractedTotal-calculatedTotal) >= totalTolerance {
		totalMismatch = true
		if s.enableDebugLogging {
			log.Printf("[RECEIPT] printed total %.2f disagrees with calculated %.2f", *extractedTotal, calculatedTotal)
		}
	}

	return &domain.ReceiptParseResult{
		Items:           items,
		CalculatedTotal: calculatedTotal,
		ExtractedTotal:  extractedTotal,
		PaymentMode:     paymentMode,
		AvgConfidence:   avgConfidence,
		MatchedCount:    matchedCount,
		TotalCount:      len(items),
		MatchRate:       matchRate,
		TotalMismatch:   totalMismatch,
		RawText:         text,
	}
}

// extractItem parses one item line and matches it against the catalog.
// The item is appended regardless of match outcome: unmatched items
// carry a fixed 0.5 confidence and a ranked suggestion list.
func (s *ReceiptService) extractItem(line string, catalog []domain.CatalogProduct) (domain.ParsedItem, bool) {
	parsed, ok := parseItemLine(line)
	if !ok {
		return domain.ParsedItem{}, false
	}

	correctedName := CorrectOCRText(parsed.name)
	if s.enableDebugLogging && correctedName != parsed.name {
		log.Printf("[RECEIPT] auto-corrected %q -> %q", parsed.name, correctedName)
	}

	if match := s.matcher.Match(correctedName, catalog); match != nil {
		return domain.ParsedItem{
			ProductName:     match.Product.Name,
			OriginalOCRText: match.Original,
			Quantity:        parsed.quantity,
			UnitPrice:       parsed.unitPrice,
			LineTotal:       parsed.lineTotal,
			Confidence:      match.Confidence,
			Matched:         true,
			MatchReason:     match.Reason,
			ProductID:       match.Product.ID,
			CatalogPrice:    match.Product.Price,
			RawLine:         line,
		}, true
	}

	return domain.ParsedItem{
		ProductName:     correctedName,
		OriginalOCRText: correctedName,
		Quantity:        parsed.quantity,
		UnitPrice:       parsed.unitPrice,
		LineTotal:       parsed.lineTotal,
		Confidence:      unmatchedConfidence,
		Matched:         false,
		Suggestions:     s.matcher.Suggest(correctedName, catalog),
		RawLine:         line,
	}, true
}
