package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kiranabill/backend/config"
	httpDelivery "github.com/kiranabill/backend/internal/delivery/http"
	"github.com/kiranabill/backend/internal/infrastructure/cache"
	"github.com/kiranabill/backend/internal/infrastructure/postgres"
	"github.com/kiranabill/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting KiranaBill Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Printf("Database connected: %s:%d/%s", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)

	productRepo := postgres.NewProductRepo(db)
	transactionRepo := postgres.NewTransactionRepo(db)

	catalogCache := cache.NewCatalogCache(cfg.Cache.TTL)
	log.Printf("Catalog cache TTL: %s", cfg.Cache.TTL)

	matcherConfig := usecase.MatcherConfig{
		MinMatchScore:       cfg.Matching.MinMatchScore,
		SuggestionThreshold: cfg.Matching.SuggestionThreshold,
		MaxSuggestions:      cfg.Matching.MaxSuggestions,
		EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
	}
	receiptService := usecase.NewReceiptService(matcherConfig)
	voiceService := usecase.NewVoiceService(usecase.VoiceServiceConfig{
		MinMatchScore: cfg.Matching.VoiceMinScore,
	})

	log.Printf("Matching: min_score=%.2f, voice_min=%.2f, auto_save=%.2f, debug=%v",
		cfg.Matching.MinMatchScore,
		cfg.Matching.VoiceMinScore,
		cfg.Matching.AutoSaveConfidence,
		cfg.Matching.EnableDebugLogging)

	handler := httpDelivery.NewHandler(httpDelivery.HandlerConfig{
		Products:           productRepo,
		Transactions:       transactionRepo,
		ReceiptService:     receiptService,
		VoiceService:       voiceService,
		CatalogCache:       catalogCache,
		AutoSaveConfidence: cfg.Matching.AutoSaveConfidence,
	})

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
