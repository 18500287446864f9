package usecase

import (
	"strconv"
	"strings"

	"github.com/kiranabill/backend/internal/domain"
)

// numberWords maps spoken number words to quantities: English 0-20
// plus the transliterated Hindi helpers heard in real transcripts.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
	"eighteen": 18, "nineteen": 19, "twenty": 20,
	"do": 2, "teen": 3, "char": 4, "paanch": 5,
}

// voiceStopWords end one item description and start the next (or name
// the payment mode).
var voiceStopWords = map[string]bool{
	"and": true, "with": true, "also": true, "plus": true,
	"upi": true, "cash": true, "payment": true,
}

// Payment-mode keywords, scanned over the whole transcript. UPI
// keywords take precedence over cash keywords.
var (
	upiKeywords  = []string{"upi", "online", "paytm", "gpay", "phonepe", "digital"}
	cashKeywords = []string{"cash", "nakad"}
)

// segmenter accumulates the quantity and name tokens of the item
// currently being spoken. It holds no catalog knowledge; flushing is
// the caller's decision on stop words and at end of input.
type segmenter struct {
	quantity *int
	nameBuf  []string
}

// setQuantity records a spoken quantity; the token is consumed and
// never buffered as part of a name.
func (g *segmenter) setQuantity(q int) {
	g.quantity = &q
}

// buffer appends a name token to the current segment.
func (g *segmenter) buffer(token string) {
	g.nameBuf = append(g.nameBuf, token)
}

// flush returns the buffered segment and resets state — but only when
// both a name and a quantity have been collected. A stop word arriving
// with half a segment leaves the state untouched, so "parle g and 2
// maggi" keeps collecting across the stray "and".
func (g *segmenter) flush() (name string, quantity int, ok bool) {
	if len(g.nameBuf) == 0 || g.quantity == nil {
		return "", 0, false
	}
	name = strings.Join(g.nameBuf, " ")
	quantity = *g.quantity
	g.nameBuf = nil
	g.quantity = nil
	return name, quantity, true
}

// VoiceServiceConfig holds configuration for the voice parser.
type VoiceServiceConfig struct {
	MinMatchScore float64
}

// VoiceService extracts quantity+product segments from a spoken
// transcript and resolves them against the catalog with a lighter
// similarity function than the OCR matcher.
type VoiceService struct {
	minMatchScore float64
}

// NewVoiceService creates a voice transcript parsing service.
func NewVoiceService(config VoiceServiceConfig) *VoiceService {
	minScore := config.MinMatchScore
	if minScore <= 0 {
		minScore = 0.5
	}
	return &VoiceService{minMatchScore: minScore}
}

// ParseTranscript tokenizes the transcript on whitespace and walks it
// left to right: integers and number words set the pending quantity,
// stop words flush the current segment, everything else buffers as
// name tokens. A final flush picks up the residual segment. Payment
// mode is derived from the whole transcript, not per token.
func (s *VoiceService) ParseTranscript(transcript string, catalog []domain.CatalogProduct) *domain.VoiceParseResult {
	var items []domain.ExtractedItem
	var seg segmenter

	for _, word := range strings.Fields(transcript) {
		if n, err := strconv.Atoi(word); err == nil {
			seg.setQuantity(n)
			continue
		}

		if n, ok := numberWords[strings.ToLower(word)]; ok {
			seg.setQuantity(n)
			continue
		}

		if voiceStopWords[strings.ToLower(word)] {
			if item, ok := s.matchSegment(&seg, catalog); ok {
				items = append(items, item)
			}
			continue
		}

		seg.buffer(word)
	}

	if item, ok := s.matchSegment(&seg, catalog); ok {
		items = append(items, item)
	}

	avgConfidence := 0.0
	if len(items) > 0 {
		sum := 0.0
		for _, item := range items {
			sum += item.Confidence
		}
		avgConfidence = sum / float64(len(items))
	}

	return &domain.VoiceParseResult{
		Items:         items,
		PaymentMode:   detectPaymentMode(transcript),
		AvgConfidence: avgConfidence,
		RawTranscript: transcript,
	}
}

// matchSegment flushes the segmenter and resolves the spoken name
// against the catalog. Segments that flush but fail to match are
// dropped; the reset still happened, matching the flush contract.
func (s *VoiceService) matchSegment(seg *segmenter, catalog []domain.CatalogProduct) (domain.ExtractedItem, bool) {
	name, quantity, ok := seg.flush()
	if !ok {
		return domain.ExtractedItem{}, false
	}

	var best *domain.CatalogProduct
	bestScore := 0.0
	for i := range catalog {
		score := voiceSimilarity(name, catalog[i].Name)
		if score > bestScore && score > s.minMatchScore {
			bestScore = score
			best = &catalog[i]
		}
	}
	if best == nil {
		return domain.ExtractedItem{}, false
	}

	return domain.ExtractedItem{
		ProductName: best.Name,
		ProductID:   best.ID,
		Price:       best.Price,
		Quantity:    quantity,
		Confidence:  bestScore,
	}, true
}

// voiceSimilarity is the lighter scorer used for spoken names:
// exact after stripping hyphens and spaces scores 1.0, containment
// 0.9, otherwise the fraction of the shorter string's characters
// found anywhere in the longer one.
func voiceSimilarity(a, b string) float64 {
	s1 := stripSeparators(a)
	s2 := stripSeparators(b)

	if s1 == s2 {
		return 1.0
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.9
	}

	longer, shorter := s1, s2
	if len(s2) > len(s1) {
		longer, shorter = s2, s1
	}
	if len(longer) == 0 {
		return 1.0
	}

	matches := 0
	for _, r := range shorter {
		if strings.ContainsRune(longer, r) {
			matches++
		}
	}
	return float64(matches) / float64(len(longer))
}

func stripSeparators(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// detectPaymentMode scans the entire transcript for payment keywords.
// UPI indicators win over cash indicators; the default is cash.
func detectPaymentMode(text string) domain.PaymentMode {
	lower := strings.ToLower(text)

	for _, kw := range upiKeywords {
		if strings.Contains(lower, kw) {
			return domain.PaymentUPI
		}
	}
	for _, kw := range cashKeywords {
		if strings.Contains(lower, kw) {
			return domain.PaymentCash
		}
	}
	return domain.PaymentCash
}
