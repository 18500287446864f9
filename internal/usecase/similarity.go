package usecase

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// calculateSimilarity returns an edit-distance similarity ratio in
// [0,1]: 1 − levenshtein(a,b)/max(len(a),len(b)), after lowercasing
// and trimming both strings. A single-character substitution on a
// 5-letter word scores 0.8.
func calculateSimilarity(a, b string) float64 {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))

	if s1 == s2 {
		return 1.0
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := matchr.Levenshtein(s1, s2)
	return 1 - float64(distance)/float64(maxLen)
}

// tokenOverlap scores how many of a's whitespace-split tokens have a
// counterpart in b (equal, or edit-distance similarity > 0.8), divided
// by the larger of the two token counts.
func tokenOverlap(a, b string) float64 {
	aTokens := strings.Fields(strings.ToLower(a))
	bTokens := strings.Fields(strings.ToLower(b))

	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	matches := 0
	for _, at := range aTokens {
		for _, bt := range bTokens {
			if at == bt || calculateSimilarity(at, bt) > 0.8 {
				matches++
				break
			}
		}
	}

	larger := len(aTokens)
	if len(bTokens) > larger {
		larger = len(bTokens)
	}
	return float64(matches) / float64(larger)
}

// phoneticCode computes a 4-character code summarizing how a word
// sounds: the first letter is kept, remaining letters map to one of
// six consonant-sound classes, adjacent duplicate classes collapse,
// vowels and unmapped letters drop out, and the result is right-padded
// with zeros. Words that are spelled differently but pronounced alike
// ("Parle"/"Parlo") reduce to the same code.
func phoneticCode(s string) string {
	lower := strings.ToLower(s)
	if lower == "" {
		return ""
	}

	runes := []rune(lower)
	first := runes[0]

	classes := make([]byte, 0, len(runes)-1)
	for _, r := range runes[1:] {
		classes = append(classes, consonantClass(r))
	}

	// Collapse adjacent duplicates first, then drop the zero class.
	var code strings.Builder
	code.WriteRune(first)
	var prev byte = 255
	for _, c := range classes {
		if c != prev && c != '0' {
			code.WriteByte(c)
		}
		prev = c
	}

	padded := code.String() + "000"
	return padded[:4]
}

// consonantClass maps a letter to its sound class; vowels and anything
// unmapped return '0' and are dropped by phoneticCode.
func consonantClass(r rune) byte {
	switch r {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	default:
		return '0'
	}
}
