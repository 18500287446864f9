package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiranabill/backend/internal/domain"
	"github.com/kiranabill/backend/internal/infrastructure/cache"
	"github.com/kiranabill/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products           domain.ProductRepository
	transactions       domain.TransactionRepository
	receiptService     *usecase.ReceiptService
	voiceService       *usecase.VoiceService
	catalogCache       *cache.CatalogCache
	autoSaveConfidence float64
}

// HandlerConfig wires the handler's dependencies.
type HandlerConfig struct {
	Products           domain.ProductRepository
	Transactions       domain.TransactionRepository
	ReceiptService     *usecase.ReceiptService
	VoiceService       *usecase.VoiceService
	CatalogCache       *cache.CatalogCache
	AutoSaveConfidence float64
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg HandlerConfig) *Handler {
	autoSave := cfg.AutoSaveConfidence
	if autoSave <= 0 {
		autoSave = 0.7
	}
	return &Handler{
		products:           cfg.Products,
		transactions:       cfg.Transactions,
		receiptService:     cfg.ReceiptService,
		voiceService:       cfg.VoiceService,
		catalogCache:       cfg.CatalogCache,
		autoSaveConfidence: autoSave,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kiranabill-backend",
		"version": "1.0.0",
	})
}

// catalog returns the product catalog, served from the TTL cache when
// possible. The parse engines take the catalog as a plain value and
// never touch storage themselves.
func (h *Handler) catalog(ctx context.Context) ([]domain.CatalogProduct, error) {
	if h.catalogCache != nil {
		if products, ok := h.catalogCache.Get(); ok {
			return products, nil
		}
	}
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if h.catalogCache != nil {
		h.catalogCache.Set(products)
	}
	return products, nil
}

func (h *Handler) invalidateCatalog() {
	if h.catalogCache != nil {
		h.catalogCache.Invalidate()
	}
}

// ProcessReceiptText parses OCR-extracted receipt text against the
// current catalog.
// POST /api/v1/ocr/process-text
func (h *Handler) ProcessReceiptText(c *gin.Context) {
	var req struct {
		ExtractedText string `json:"extracted_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ExtractedText) == "" {
		respondError(c, http.StatusBadRequest, "Extracted text is required")
		return
	}

	products, err := h.catalog(c.Request.Context())
	if err != nil {
		log.Printf("[OCR] failed to fetch catalog: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch product catalog")
		return
	}

	result := h.receiptService.ParseReceipt(req.ExtractedText, products)
	respondOK(c, http.StatusOK, "Receipt parsed successfully", result)
}

// VoiceProcess parses a spoken transcript, and auto-saves the
// resulting transaction when the engine is confident enough.
// POST /api/v1/transactions/voice-process
func (h *Handler) VoiceProcess(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Transcript) == "" {
		respondError(c, http.StatusBadRequest, "Transcript is required")
		return
	}

	products, err := h.catalog(c.Request.Context())
	if err != nil {
		log.Printf("[VOICE] failed to fetch catalog: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch product catalog")
		return
	}

	result := h.voiceService.ParseTranscript(req.Transcript, products)

	totalAmount := 0.0
	for _, item := range result.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	if result.AvgConfidence < h.autoSaveConfidence {
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"message":         "Low confidence - please review before saving",
			"requires_review": true,
			"ai_analysis":     result,
			"total_amount":    totalAmount,
		})
		return
	}

	txn := &domain.Transaction{
		Items:           result.Items,
		PaymentMode:     result.PaymentMode,
		TotalAmount:     totalAmount,
		Source:          domain.SourceVoice,
		ConfidenceScore: result.AvgConfidence,
		RawTranscript:   req.Transcript,
	}
	if err := h.transactions.Create(c.Request.Context(), txn); err != nil {
		log.Printf("[VOICE] failed to save transaction: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Transaction processed and saved automatically",
		"auto_saved":   true,
		"transaction":  txn,
		"ai_analysis":  result,
		"total_amount": totalAmount,
	})
}

// AddTransaction records a manually entered transaction.
// POST /api/v1/transactions
func (h *Handler) AddTransaction(c *gin.Context) {
	var req struct {
		Items       []domain.ExtractedItem `json:"items"`
		PaymentMode string                 `json:"payment_mode"`
		TotalAmount float64                `json:"total_amount"`
		Source      string                 `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(c, http.StatusBadRequest, "Items are required")
		return
	}
	if !domain.ValidPaymentMode(req.PaymentMode) {
		respondError(c, http.StatusBadRequest, `Invalid payment mode. Use "cash" or "upi"`)
		return
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	txn := &domain.Transaction{
		Items:       req.Items,
		PaymentMode: domain.PaymentMode(req.PaymentMode),
		TotalAmount: req.TotalAmount,
		Source:      source,
	}
	if err := h.transactions.Create(c.Request.Context(), txn); err != nil {
		log.Printf("[TXN] failed to save transaction: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	respondOK(c, http.StatusOK, "Transaction added successfully", txn)
}

// DailySummary aggregates a day's transactions per payment rail.
// GET /api/v1/transactions/daily-summary?date=YYYY-MM-DD
func (h *Handler) DailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	txns, err := h.transactions.ListByDate(c.Request.Context(), date)
	if err != nil {
		log.Printf("[SUMMARY] failed to list transactions: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	summary := domain.DailySummary{
		Date:              date,
		TotalTransactions: len(txns),
		Cash:              domain.PaymentModeTotals{Transactions: []domain.Transaction{}},
		UPI:               domain.PaymentModeTotals{Transactions: []domain.Transaction{}},
	}
	for _, txn := range txns {
		switch txn.PaymentMode {
		case domain.PaymentCash:
			summary.Cash.Count++
			summary.Cash.Total += txn.TotalAmount
			summary.Cash.Transactions = append(summary.Cash.Transactions, txn)
		case domain.PaymentUPI:
			summary.UPI.Count++
			summary.UPI.Total += txn.TotalAmount
			summary.UPI.Transactions = append(summary.UPI.Transactions, txn)
		}
	}

	respondOK(c, http.StatusOK, "", summary)
}

// DetectMismatch compares an expected and an actual transaction summary.
// POST /api/v1/transactions/detect-mismatch
func (h *Handler) DetectMismatch(c *gin.Context) {
	var req struct {
		Expected domain.TransactionSummary `json:"expected"`
		Actual   domain.TransactionSummary `json:"actual"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Expected and actual summaries are required")
		return
	}

	report := usecase.DetectMismatch(req.Expected, req.Actual)
	respondOK(c, http.StatusOK, "", report)
}

// ListProducts returns the full catalog ordered by name.
// GET /api/v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		log.Printf("[PRODUCTS] list failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}
	respondOK(c, http.StatusOK, "", products)
}

// AddProduct adds a product to the catalog.
// POST /api/v1/products
func (h *Handler) AddProduct(c *gin.Context) {
	var req struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		Stock    int     `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Price <= 0 {
		respondError(c, http.StatusBadRequest, "Product name and price are required")
		return
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	product := &domain.CatalogProduct{
		Name:     req.Name,
		Price:    req.Price,
		Category: category,
		Stock:    req.Stock,
	}
	if err := h.products.Create(c.Request.Context(), product); err != nil {
		log.Printf("[PRODUCTS] create failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to add product")
		return
	}
	h.invalidateCatalog()

	respondOK(c, http.StatusOK, "Product added successfully", product)
}

// UpdateProduct updates an existing catalog entry.
// PUT /api/v1/products/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	existing, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Price    *float64 `json:"price"`
		Category *string  `json:"category"`
		Stock    *int     `json:"stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}

	if err := h.products.Update(c.Request.Context(), existing); err != nil {
		log.Printf("[PRODUCTS] update failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}
	h.invalidateCatalog()

	respondOK(c, http.StatusOK, "Product updated successfully", existing)
}

// DeleteProduct removes a product from the catalog.
// DELETE /api/v1/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("[PRODUCTS] delete failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	h.invalidateCatalog()

	respondOK(c, http.StatusOK, "Product deleted successfully", nil)
}

// SearchProducts searches the catalog by name substring.
// POST /api/v1/products/search
func (h *Handler) SearchProducts(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		respondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	products, err := h.products.SearchByName(c.Request.Context(), req.Query)
	if err != nil {
		log.Printf("[PRODUCTS] search failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to search products")
		return
	}
	respondOK(c, http.StatusOK, "", products)
}
