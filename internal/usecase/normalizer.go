package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonCanonicalRegex   = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
	rupeeMarkerRegex    = regexp.MustCompile(`(?i)Rs\.?`)
)

// ocrCorrection is one literal substitution in the OCR-confusion table.
type ocrCorrection struct {
	pattern     *regexp.Regexp
	replacement string
}

// ocrCorrections is the fixed, ordered table of word-level confusions
// observed on real thermal-printer receipts. Rules run in table order,
// each replacing every occurrence (case-insensitive) before the next
// rule is evaluated.
var ocrCorrections = buildCorrections([][2]string{
	{"Parla", "Parle"},
	{"Parlo", "Parle"},
	{"Megs", "Maggi"},
	{"Maggl", "Maggi"},
	{"Pops", "Pepsi"},
	{"Popsi", "Pepsi"},
	{"Kurkuro", "Kurkure"},
	{"Kukure", "Kurkure"},
	{"Britanla", "Britannia"},
	{"Britania", "Britannia"},
	{"Goed", "Good"},
	{"Goot", "Good"},
	{"Cocacola", "Coca Cola"},
	{"CocaCola", "Coca Cola"},
})

func buildCorrections(pairs [][2]string) []ocrCorrection {
	corrections := make([]ocrCorrection, 0, len(pairs))
	for _, p := range pairs {
		corrections = append(corrections, ocrCorrection{
			pattern:     regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p[0])),
			replacement: p[1],
		})
	}
	return corrections
}

// CorrectOCRText applies the OCR-confusion table to free text and
// returns the display-cased corrected string. Correcting already
// corrected text is a no-op.
func CorrectOCRText(text string) string {
	corrected := text
	for _, c := range ocrCorrections {
		corrected = c.pattern.ReplaceAllString(corrected, c.replacement)
	}
	return corrected
}

// StripCurrencyMarkers removes the rupee symbol and the "Rs"/"Rs."
// unit marker, then collapses whitespace.
func StripCurrencyMarkers(text string) string {
	s := strings.ReplaceAll(text, "₹", "")
	s = rupeeMarkerRegex.ReplaceAllString(s, "")
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Canonical converts a string to its matching-canonical form:
// lowercased with every character outside [a-z0-9 and whitespace]
// removed. All matcher strategies compare canonical strings.
func Canonical(s string) string {
	return nonCanonicalRegex.ReplaceAllString(strings.ToLower(s), "")
}
