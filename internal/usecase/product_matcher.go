package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/kiranabill/backend/internal/domain"
)

// Matching thresholds and fixed strategy scores. The substring score
// is deliberately a fixed 0.95: it can outrank a 0.94 edit-distance
// match and still lose to a later 0.96 one for a different entry.
const (
	exactMatchConfidence = 0.99
	substringMatchScore  = 0.95
	phoneticMatchScore   = 0.8

	defaultMinMatchScore       = 0.65
	defaultTokenMatchThreshold = 0.6
	defaultSuggestionThreshold = 0.5
	defaultMaxSuggestions      = 3
)

// MatcherConfig holds configuration for the product matcher.
type MatcherConfig struct {
	MinMatchScore       float64
	SuggestionThreshold float64
	MaxSuggestions      int
	EnableDebugLogging  bool
}

// ProductMatcher scores an extracted product name against every
// catalog entry using five strategies: exact, substring, edit-distance
// similarity, token overlap, and phonetic. It is stateless and safe
// for concurrent use.
type ProductMatcher struct {
	minMatchScore       float64
	suggestionThreshold float64
	maxSuggestions      int
	enableDebugLogging  bool
}

// NewProductMatcher creates a matcher with the given configuration,
// falling back to the tuned defaults for zero values.
func NewProductMatcher(config MatcherConfig) *ProductMatcher {
	minScore := config.MinMatchScore
	if minScore <= 0 {
		minScore = defaultMinMatchScore
	}
	suggestionThreshold := config.SuggestionThreshold
	if suggestionThreshold <= 0 {
		suggestionThreshold = defaultSuggestionThreshold
	}
	maxSuggestions := config.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}

	return &ProductMatcher{
		minMatchScore:       minScore,
		suggestionThreshold: suggestionThreshold,
		maxSuggestions:      maxSuggestions,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// Match finds the best catalog entry for an extracted name, or nil
// when no strategy clears the acceptance threshold.
//
// An exact canonical match short-circuits with score 1.0 and
// confidence 0.99. Otherwise a single running best is kept across all
// (entry, strategy) evaluations, updated only on a strictly higher
// score, so the first entry found wins ties.
func (m *ProductMatcher) Match(extractedName string, catalog []domain.CatalogProduct) *domain.MatchResult {
	cleaned := CorrectOCRText(extractedName)
	searchTerm := Canonical(cleaned)

	var bestMatch *domain.CatalogProduct
	bestScore := 0.0
	var matchReason domain.MatchReason

	for i := range catalog {
		product := &catalog[i]
		dbName := Canonical(product.Name)

		// Strategy 1: exact match
		if searchTerm == dbName {
			if m.enableDebugLogging {
				log.Printf("[MATCH] %q -> %q (exact)", extractedName, product.Name)
			}
			return &domain.MatchResult{
				Product:    *product,
				Score:      1.0,
				Confidence: exactMatchConfidence,
				Reason:     domain.ReasonExactMatch,
				Original:   extractedName,
				Corrected:  cleaned,
			}
		}

		// Strategy 2: substring containment
		if strings.Contains(searchTerm, dbName) || strings.Contains(dbName, searchTerm) {
			if substringMatchScore > bestScore {
				bestScore = substringMatchScore
				bestMatch = product
				matchReason = domain.ReasonSubstringMatch
			}
		}

		// Strategy 3: edit-distance similarity
		if similarity := calculateSimilarity(searchTerm, dbName); similarity > bestScore && similarity > m.minMatchScore {
			bestScore = similarity
			bestMatch = product
			matchReason = domain.ReasonSimilarityMatch
		}

		// Strategy 4: token overlap
		if tokenScore := tokenOverlap(searchTerm, dbName); tokenScore > bestScore && tokenScore > defaultTokenMatchThreshold {
			bestScore = tokenScore
			bestMatch = product
			matchReason = domain.ReasonTokenMatch
		}

		// Strategy 5: phonetic
		if phoneticCode(searchTerm) == phoneticCode(dbName) {
			if phoneticMatchScore > bestScore {
				bestScore = phoneticMatchScore
				bestMatch = product
				matchReason = domain.ReasonPhoneticMatch
			}
		}
	}

	if bestMatch != nil && bestScore > m.minMatchScore {
		if m.enableDebugLogging {
			log.Printf("[MATCH] %q -> %q (%.0f%%, %s)", extractedName, bestMatch.Name, bestScore*100, matchReason)
		}
		return &domain.MatchResult{
			Product:    *bestMatch,
			Score:      bestScore,
			Confidence: bestScore,
			Reason:     matchReason,
			Original:   extractedName,
			Corrected:  cleaned,
		}
	}

	if m.enableDebugLogging {
		log.Printf("[MATCH] %q -> no match (best %.2f)", extractedName, bestScore)
	}
	return nil
}

// Suggest returns up to MaxSuggestions near-miss catalog entries for
// an extracted name, ranked by edit-distance similarity against the
// raw (uncorrected) candidate. Suggestions are computed independently
// of Match, so callers can offer them even when a strong match exists.
func (m *ProductMatcher) Suggest(extractedName string, catalog []domain.CatalogProduct) []domain.Suggestion {
	var suggestions []domain.Suggestion

	for _, product := range catalog {
		similarity := calculateSimilarity(
			strings.ToLower(extractedName),
			strings.ToLower(product.Name),
		)
		if similarity > m.suggestionThreshold {
			suggestions = append(suggestions, domain.Suggestion{
				Name:       product.Name,
				Similarity: similarity,
				Product:    product,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})

	if len(suggestions) > m.maxSuggestions {
		suggestions = suggestions[:m.maxSuggestions]
	}
	return suggestions
}
