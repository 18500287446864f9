package domain

import "time"

// CatalogProduct represents a single product in the shop inventory.
// The matching engine treats the catalog as read-only input; it is
// fetched by the caller per invocation and never cached or mutated by
// the engine itself.
type CatalogProduct struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	Category  string    `json:"category,omitempty" db:"category"`
	Stock     int       `json:"stock" db:"stock"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// MatchReason identifies which matching strategy produced a result.
type MatchReason string

const (
	ReasonExactMatch      MatchReason = "exact_match"
	ReasonSubstringMatch  MatchReason = "substring_match"
	ReasonSimilarityMatch MatchReason = "similarity_match"
	ReasonTokenMatch      MatchReason = "token_match"
	ReasonPhoneticMatch   MatchReason = "phonetic_match"
)

// MatchResult is a successful catalog match for an extracted name.
type MatchResult struct {
	Product    CatalogProduct `json:"product"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Reason     MatchReason    `json:"reason"`
	Original   string         `json:"original"`
	Corrected  string         `json:"corrected"`
}

// Suggestion is a near-miss catalog entry offered for unmatched items
// (and alongside confident matches, for review UIs).
type Suggestion struct {
	Name       string         `json:"name"`
	Similarity float64        `json:"similarity"`
	Product    CatalogProduct `json:"product"`
}
