package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github/itish2003/pdfchat/config"
	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/router"
	"github/itish2003/pdfchat/services"

	chromago "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Logging.Level)
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create Chroma client using v2 API
	chromaClient, err := chromago.NewHTTPClient(chromago.WithBaseURL(cfg.Search.ChromaURL))
	if err != nil {
		logger.Log.Fatalf("FATAL: Failed to create chroma client: %v", err)
	}

	// Ensure we close the client to release resources like local embedding functions
	defer func() {
		if err := chromaClient.Close(); err != nil {
			logger.Log.Warnf("Failed to close chroma client: %v", err)
		}
	}()

	collection, err := getOrCreateCollection(ctx, chromaClient, cfg.Search.Collection)
	if err != nil {
		logger.Log.Fatalf("FATAL: Failed to get or create collection: %v", err)
	}

	embedder, err := services.NewOllamaEmbedder(cfg.Search.OllamaURL, cfg.Search.EmbeddingModel)
	if err != nil {
		logger.Log.Fatalf("FATAL: %v", err)
	}

	geminiClient, err := services.NewGeminiClient(ctx, cfg.Gemini.APIKey)
	if err != nil {
		logger.Log.Fatalf("FATAL: %v. Make sure GEMINI_API_KEY is set.", err)
	}
	logger.Log.Infof("Gemini client ready, model %s", cfg.Gemini.Model)

	searcher := services.NewChromaSearcher(collection, embedder, cfg.Search.Results)
	generator := services.NewGeminiGenerator(geminiClient, cfg.Gemini.Model)
	hostService := services.NewHostService(cfg.Server.Port)

	engine := router.New(router.Deps{
		ChatService: services.NewChatService(searcher, generator),
		HostService: hostService,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Log.Info("Starting PDF Chat Backend Server...")
	if info, err := hostService.ServerInfo(ctx); err == nil {
		logger.InfoWithFields("server identity", logger.Fields{
			"hostname":   info.Hostname,
			"ip_address": info.IPAddress,
			"port":       info.Port,
		})
	} else {
		logger.Log.Warnf("Could not resolve server identity: %v", err)
	}

	go func() {
		logger.Log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("FATAL: Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}
	logger.Log.Info("Server stopped")
}

// getOrCreateCollection opens the collection that holds the document chunks.
func getOrCreateCollection(ctx context.Context, client chromago.Client, collectionName string) (chromago.Collection, error) {
	logger.Log.Infof("Getting or creating collection '%s'...", collectionName)

	collection, err := client.GetOrCreateCollection(
		ctx,
		collectionName,
		chromago.WithCollectionMetadataCreate(
			chromago.NewMetadata(
				chromago.NewStringAttribute("description", "PDF chat document chunks"),
				chromago.NewStringAttribute("created_by", "pdfchat"),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	logger.Log.Infof("Successfully got/created collection '%s'", collectionName)
	return collection, nil
}
