package domain

// ExtractedItem is one quantity+product segment recognized in a spoken
// transcript. Price is the catalog unit price of the matched product.
type ExtractedItem struct {
	ProductName string  `json:"product_name"`
	ProductID   int64   `json:"product_id"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Confidence  float64 `json:"confidence"`
}

// VoiceParseResult is the outcome of parsing a voice transcript.
// Items are in transcript order.
type VoiceParseResult struct {
	Items         []ExtractedItem `json:"items"`
	PaymentMode   PaymentMode     `json:"payment_mode"`
	AvgConfidence float64         `json:"total_confidence"`
	RawTranscript string          `json:"raw_transcript"`
}
