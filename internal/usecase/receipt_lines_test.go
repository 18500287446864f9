package usecase

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want lineType
	}{
		{"store header", "Sharma General Store", lineHeader},
		{"date header", "Date: 12/04/2025", lineHeader},
		{"total footer", "Total 166.00", lineFooter},
		{"payment footer", "Payment: UPI", lineFooter},
		{"thank you footer", "Thank you, visit again", lineFooter},
		{"equals separator", "==========", lineSeparator},
		{"mixed separator", "--**--", lineSeparator},
		{"item line", "Parle G 2 x 10.00 20.00", lineItem},
		{"short digits only", "12", lineUnknown},
		{"plain text", "some words", lineUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLine(tt.line); got != tt.want {
				t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}

	t.Run("footer keyword outranks digits", func(t *testing.T) {
		// A line with both a footer keyword and numbers is a footer,
		// never an item. The priority order is load-bearing.
		if got := classifyLine("Total 166.00"); got != lineFooter {
			t.Errorf("classifyLine = %v, want footer", got)
		}
	})

	t.Run("header keyword outranks footer keyword", func(t *testing.T) {
		if got := classifyLine("Store payment desk"); got != lineHeader {
			t.Errorf("classifyLine = %v, want header", got)
		}
	})
}

func TestParseItemLine(t *testing.T) {
	t.Run("three numbers: qty unit total", func(t *testing.T) {
		parsed, ok := parseItemLine("Parle G 2 x 10.00 20.00")
		if !ok {
			t.Fatal("expected item")
		}
		if parsed.quantity != 2 {
			t.Errorf("quantity = %d, want 2", parsed.quantity)
		}
		if parsed.unitPrice != 10.00 {
			t.Errorf("unitPrice = %v, want 10.00", parsed.unitPrice)
		}
		if parsed.lineTotal != 20.00 {
			t.Errorf("lineTotal = %v, want 20.00", parsed.lineTotal)
		}
		if parsed.name != "Parle G" {
			t.Errorf("name = %q, want %q", parsed.name, "Parle G")
		}
	})

	t.Run("three numbers keeps receipt arithmetic as printed", func(t *testing.T) {
		// 2 x 10.00 should be 20.00 but the receipt says 25.00;
		// both values are stored as given.
		parsed, ok := parseItemLine("Parle G 2 x 10.00 25.00")
		if !ok {
			t.Fatal("expected item")
		}
		if parsed.unitPrice != 10.00 || parsed.lineTotal != 25.00 {
			t.Errorf("got unit=%v total=%v, want 10.00/25.00", parsed.unitPrice, parsed.lineTotal)
		}
	})

	t.Run("two numbers: unit derived from total", func(t *testing.T) {
		parsed, ok := parseItemLine("Maggi 2 x 24.00")
		if !ok {
			t.Fatal("expected item")
		}
		if parsed.quantity != 2 {
			t.Errorf("quantity = %d, want 2", parsed.quantity)
		}
		if parsed.lineTotal != 24.00 {
			t.Errorf("lineTotal = %v, want 24.00", parsed.lineTotal)
		}
		if parsed.unitPrice != 12.00 {
			t.Errorf("unitPrice = %v, want 12.00", parsed.unitPrice)
		}
	})

	t.Run("one number with default quantity: unit equals total", func(t *testing.T) {
		parsed, ok := parseItemLine("Kurkure 20.00")
		if !ok {
			t.Fatal("expected item")
		}
		if parsed.quantity != 1 {
			t.Errorf("quantity = %d, want 1", parsed.quantity)
		}
		if parsed.unitPrice != parsed.lineTotal {
			t.Errorf("unit %v != total %v for single-number line", parsed.unitPrice, parsed.lineTotal)
		}
	})

	t.Run("no numbers rejected", func(t *testing.T) {
		if _, ok := parseItemLine("just some text"); ok {
			t.Error("expected rejection")
		}
	})

	t.Run("tiny total rejected", func(t *testing.T) {
		if _, ok := parseItemLine("noise 0.50"); ok {
			t.Error("expected rejection for total < 1")
		}
	})

	t.Run("tiny unit price rejected", func(t *testing.T) {
		// 100 x 5.00 gives a 0.05 unit price, under the 0.1 guard.
		if _, ok := parseItemLine("bulk 100 x 5.00"); ok {
			t.Error("expected rejection for unit < 0.1")
		}
	})

	t.Run("short name rejected", func(t *testing.T) {
		if _, ok := parseItemLine("G 10.00"); ok {
			t.Error("expected rejection for name shorter than 2 chars")
		}
	})

	t.Run("currency markers and punctuation stripped from name", func(t *testing.T) {
		parsed, ok := parseItemLine("Maggi Noodles | Rs. 12.00")
		if !ok {
			t.Fatal("expected item")
		}
		if parsed.name != "Maggi Noodles" {
			t.Errorf("name = %q, want %q", parsed.name, "Maggi Noodles")
		}
	})
}
