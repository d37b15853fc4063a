package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/horadelbocadillo/yotetraduzco-clean/internal/api/http/router"
	httpserver "github.com/horadelbocadillo/yotetraduzco-clean/internal/api/http/server"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/config"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/logger"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/model"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/repository/postgres"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/server"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/service"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/upstream/datamuse"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/upstream/deepl"
	"github.com/horadelbocadillo/yotetraduzco-clean/internal/upstream/unsplash"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// Local development keeps API keys in a .env file; its absence is fine.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	httpClient := &http.Client{Timeout: 15 * time.Second}
	translator := deepl.NewClient(httpClient, cfg.DeepL.BaseURL, cfg.DeepL.APIKey)
	images := unsplash.NewClient(httpClient, cfg.Unsplash.BaseURL, cfg.Unsplash.AccessKey)
	suggestions := datamuse.NewClient(httpClient, cfg.Datamuse.BaseURL, cfg.Datamuse.Max)

	wordRepo := postgres.NewWordRepository(db)
	wordService := service.NewWord(wordRepo, logger)
	suggestService := service.NewSuggest(suggestions, logger)

	r := router.New(wordService, translator, images, suggestService, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
