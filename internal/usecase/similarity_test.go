package usecase

import "testing"

func TestCalculateSimilarity(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		if got := calculateSimilarity("maggi", "maggi"); got != 1.0 {
			t.Errorf("similarity = %v, want 1.0", got)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		if got := calculateSimilarity("  Maggi ", "maggi"); got != 1.0 {
			t.Errorf("similarity = %v, want 1.0", got)
		}
	})

	t.Run("single substitution on five letters scores 0.8", func(t *testing.T) {
		got := calculateSimilarity("maggi", "maggl")
		if got != 0.8 {
			t.Errorf("similarity = %v, want 0.8", got)
		}
		if got <= 0.65 {
			t.Errorf("similarity %v should clear the 0.65 match threshold", got)
		}
	})

	t.Run("both empty score 1", func(t *testing.T) {
		if got := calculateSimilarity("", ""); got != 1.0 {
			t.Errorf("similarity = %v, want 1.0", got)
		}
	})

	t.Run("disjoint strings score low", func(t *testing.T) {
		if got := calculateSimilarity("parle", "zzzzz"); got > 0.2 {
			t.Errorf("similarity = %v, want <= 0.2", got)
		}
	})
}

func TestTokenOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical tokens", "parle g", "parle g", 1.0},
		{"fuzzy token counts", "parle g biscuit", "parle g", 2.0 / 3.0},
		{"no overlap", "kurkure masala", "pepsi", 0},
		{"empty a", "", "parle", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenOverlap(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("tokenOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("near-equal tokens count as overlap", func(t *testing.T) {
		// "maggi" vs "maggl" scores 0.8 similarity; the > 0.8 cutoff
		// excludes it, but "kurkure" vs "kurkur" (0.857) passes.
		if got := tokenOverlap("kurkure chips", "kurkur chips"); got != 1.0 {
			t.Errorf("tokenOverlap = %v, want 1.0", got)
		}
	})
}

func TestPhoneticCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"parle", "p640"},
		{"parlo", "p640"},
		{"maggi", "m200"},
		{"pepsi", "p120"},
		{"r", "r000"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := phoneticCode(tt.input); got != tt.want {
				t.Errorf("phoneticCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("spelling variants share a code", func(t *testing.T) {
		if phoneticCode("Parle") != phoneticCode("Parlo") {
			t.Error("Parle and Parlo should produce the same phonetic code")
		}
	})

	t.Run("adjacent duplicate classes collapse", func(t *testing.T) {
		// gg maps to class 2 twice and must collapse to one digit.
		if got := phoneticCode("maggi"); got != "m200" {
			t.Errorf("phoneticCode(maggi) = %q, want m200", got)
		}
	})
}
