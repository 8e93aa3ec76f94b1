package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clickconnect-backend/internal/catalog"
	"clickconnect-backend/internal/config"
	"clickconnect-backend/internal/handlers"
	"clickconnect-backend/internal/router"
	"clickconnect-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Click & Connect chat backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Product Catalog ────
	var products []catalog.Entry
	var err error
	if cfg.CatalogPath != "" {
		products, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		products, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("✗ Catalog load failed: %v", err)
	}
	systemInstruction := catalog.SystemInstruction(catalog.Format(products))
	log.Printf("✓ Catalog loaded (%d products)", len(products))

	// ──── Step 3: Prepare Gemini Service (client is built on first chat) ────
	geminiService := services.NewGeminiService(cfg.GoogleAPIKey, cfg.GeminiModel, cfg.GeminiTimeout)
	defer geminiService.Close()
	log.Printf("✓ Gemini service ready (model %s, timeout %s)", cfg.GeminiModel, cfg.GeminiTimeout)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService, systemInstruction, handlers.GenerationSettings{
		Temperature:     cfg.GeminiTemperature,
		MaxOutputTokens: cfg.GeminiMaxOutputTokens,
	})
	productHandler := handlers.NewProductHandler(products)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, productHandler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GeminiTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Chat backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
