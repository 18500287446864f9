package usecase

import (
	"testing"

	"github.com/kiranabill/backend/internal/domain"
)

const sampleReceipt = `Sharma General Store
Date: 12/04/2025
==========
Parle G 2 x 10.00 20.00
Megs Noodles 2 x 12.00 24.00
Kurkure 20.00
Pepsi Bottle 2 x 40.00 80.00
Chocolate Bar 22.00
==========
Total 166.00
Paid by UPI
Thank you, visit again`

func TestParseReceipt(t *testing.T) {
	svc := NewReceiptService(MatcherConfig{})

	t.Run("full receipt", func(t *testing.T) {
		result := svc.ParseReceipt(sampleReceipt, testCatalog())

		if result.TotalCount != 5 {
			t.Fatalf("TotalCount = %d, want 5", result.TotalCount)
		}
		if result.CalculatedTotal != 166.00 {
			t.Errorf("CalculatedTotal = %v, want 166.00", result.CalculatedTotal)
		}
		if result.ExtractedTotal == nil || *result.ExtractedTotal != 166.00 {
			t.Errorf("ExtractedTotal = %v, want 166.00", result.ExtractedTotal)
		}
		if result.TotalMismatch {
			t.Error("difference of 0 must not flag a total mismatch")
		}
		if result.PaymentMode != domain.PaymentUPI {
			t.Errorf("PaymentMode = %v, want upi", result.PaymentMode)
		}

		// Items stay in receipt line order.
		if result.Items[0].ProductName != "Parle G" {
			t.Errorf("first item = %q, want Parle G", result.Items[0].ProductName)
		}
		if !result.Items[0].Matched || result.Items[0].Quantity != 2 {
			t.Errorf("first item not matched as 2 x Parle G: %+v", result.Items[0])
		}

		// "Megs Noodles" auto-corrects to Maggi territory and matches.
		if !result.Items[1].Matched {
			t.Errorf("corrected OCR item should match: %+v", result.Items[1])
		}

		// "Chocolate Bar" is not in the catalog: kept, flagged, 0.5.
		last := result.Items[4]
		if last.Matched {
			t.Errorf("unknown item should not match: %+v", last)
		}
		if last.Confidence != 0.5 {
			t.Errorf("unmatched confidence = %v, want fixed 0.5", last.Confidence)
		}

		if result.MatchRate < 0 || result.MatchRate > 1 {
			t.Errorf("MatchRate = %v, want within [0,1]", result.MatchRate)
		}
		if result.MatchedCount != 4 {
			t.Errorf("MatchedCount = %d, want 4", result.MatchedCount)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		result := svc.ParseReceipt("", testCatalog())
		if len(result.Items) != 0 {
			t.Errorf("items = %v, want none", result.Items)
		}
		if result.MatchRate != 0 {
			t.Errorf("MatchRate = %v, want 0 for empty receipt", result.MatchRate)
		}
		if result.AvgConfidence != 0 {
			t.Errorf("AvgConfidence = %v, want 0 for empty receipt", result.AvgConfidence)
		}
		if result.PaymentMode != domain.PaymentCash {
			t.Errorf("PaymentMode = %v, want default cash", result.PaymentMode)
		}
	})

	t.Run("last total footer line wins", func(t *testing.T) {
		text := "Parle G 10.00\nTotal 99.00\nTotal 10.00"
		result := svc.ParseReceipt(text, testCatalog())
		if result.ExtractedTotal == nil || *result.ExtractedTotal != 10.00 {
			t.Errorf("ExtractedTotal = %v, want 10.00 (last wins)", result.ExtractedTotal)
		}
	})

	t.Run("subtotal line does not set extracted total", func(t *testing.T) {
		text := "Parle G 10.00\nSubtotal 9.00"
		result := svc.ParseReceipt(text, testCatalog())
		if result.ExtractedTotal != nil {
			t.Errorf("ExtractedTotal = %v, want nil", *result.ExtractedTotal)
		}
	})

	t.Run("later footer payment verdict overrides earlier", func(t *testing.T) {
		text := "Parle G 10.00\nPaid by UPI\nPayment: cash"
		result := svc.ParseReceipt(text, testCatalog())
		if result.PaymentMode != domain.PaymentCash {
			t.Errorf("PaymentMode = %v, want cash (last qualifying line wins)", result.PaymentMode)
		}
	})

	t.Run("total discrepancy beyond tolerance is advisory", func(t *testing.T) {
		text := "Parle G 10.00\nTotal 50.00"
		result := svc.ParseReceipt(text, testCatalog())
		if !result.TotalMismatch {
			t.Error("expected advisory total mismatch")
		}
		// The parse itself is still fully valid.
		if result.TotalCount != 1 || result.CalculatedTotal != 10.00 {
			t.Errorf("parse invalidated by advisory mismatch: %+v", result)
		}
	})

	t.Run("unparsable lines are skipped not fatal", func(t *testing.T) {
		text := "Parle G 10.00\n???\nx 0.50\nMaggi 12.00"
		result := svc.ParseReceipt(text, testCatalog())
		if result.TotalCount != 2 {
			t.Errorf("TotalCount = %d, want 2", result.TotalCount)
		}
	})

	t.Run("unmatched items carry suggestions", func(t *testing.T) {
		// "tiger" vs "tide" scores 0.6: above the 0.5 suggestion
		// threshold, below the 0.65 acceptance threshold.
		catalog := []domain.CatalogProduct{{ID: 1, Name: "Tide", Price: 75}}
		result := svc.ParseReceipt("Tiger 18.00", catalog)
		if result.TotalCount != 1 {
			t.Fatalf("TotalCount = %d, want 1", result.TotalCount)
		}
		item := result.Items[0]
		if item.Matched {
			t.Fatalf("item unexpectedly matched: %+v", item)
		}
		if len(item.Suggestions) != 1 || item.Suggestions[0].Name != "Tide" {
			t.Errorf("Suggestions = %+v, want single Tide entry", item.Suggestions)
		}
	})
}
