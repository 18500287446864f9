package usecase

import "testing"

func TestCorrectOCRText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known confusion", "Parlo G", "Parle G"},
		{"case insensitive", "parlo g", "Parle G"},
		{"maggi confusion", "Megs Noodles", "Maggi Noodles"},
		{"maggi trailing l", "Maggl", "Maggi"},
		{"brand with double substitution", "Britania Goed Day", "Britannia Good Day"},
		{"joined brand split", "Cocacola", "Coca Cola"},
		{"clean text untouched", "Parle G", "Parle G"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CorrectOCRText(tt.input); got != tt.want {
				t.Errorf("CorrectOCRText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"Parlo G", "Megs", "Kurkuro Masala", "Britanla Marie", "already clean"}
		for _, in := range inputs {
			once := CorrectOCRText(in)
			twice := CorrectOCRText(once)
			if once != twice {
				t.Errorf("CorrectOCRText not idempotent for %q: %q != %q", in, once, twice)
			}
		}
	})
}

func TestStripCurrencyMarkers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"₹20", "20"},
		{"Rs. 20", "20"},
		{"Rs 20", "20"},
		{"rs.20", "20"},
		{"Parle G  ₹10", "Parle G 10"},
		{"  spaced   out  ", "spaced out"},
	}

	for _, tt := range tests {
		if got := StripCurrencyMarkers(tt.input); got != tt.want {
			t.Errorf("StripCurrencyMarkers(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Parle G", "parle g"},
		{"Parle-G!", "parleg"},
		{"MAGGI 2-Min", "maggi 2min"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Canonical(tt.input); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{"Parle-G!", "MAGGI 2-Min", "plain"} {
			once := Canonical(in)
			if twice := Canonical(once); once != twice {
				t.Errorf("Canonical not idempotent for %q: %q != %q", in, once, twice)
			}
		}
	})
}
