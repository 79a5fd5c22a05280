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

	"github.com/akshajravi/Intervue/internal/config"
	"github.com/akshajravi/Intervue/internal/llm"
	"github.com/akshajravi/Intervue/internal/service"
	"github.com/akshajravi/Intervue/internal/speech"
	"github.com/akshajravi/Intervue/internal/store"
	transport "github.com/akshajravi/Intervue/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting %s...", config.ServiceName)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("HTTP Port: %d", cfg.Port)
	log.Printf("Chat model: %s", cfg.ChatModel)

	// Initialize session store
	sessionStore := store.NewMemoryStore()

	// Initialize LLM client. A missing API key is fatal: the orchestrator
	// must not come up without a credential.
	llmClient, err := llm.NewOpenAIClient(llm.Config{
		APIKey:           cfg.OpenAIAPIKey,
		BaseURL:          cfg.OpenAIBaseURL,
		Model:            cfg.ChatModel,
		Temperature:      float32(cfg.Temperature),
		MaxTokens:        cfg.MaxTokens,
		PresencePenalty:  float32(cfg.PresencePenalty),
		FrequencyPenalty: float32(cfg.FrequencyPenalty),
	})
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	// Transcription is stubbed; swap in speech.NewWhisperTranscriber to
	// enable real speech-to-text.
	transcriber := speech.NewStubTranscriber()

	// Initialize service
	svc := service.New(sessionStore, llmClient, transcriber, cfg)

	// Create HTTP server
	server := transport.NewServer(svc, cfg)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Server stopped")
}
