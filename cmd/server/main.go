package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoeToribioFlores/youtube-emotion-detection/config"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/analysis"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/api"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/clients"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/logging"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/nlp"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/visualization"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := visualization.NewChartRenderer(cfg.OutputDir)
	if err != nil {
		slog.Error("[Main] Failed to prepare output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var analyzer nlp.Analyzer
	switch cfg.Analyzer {
	case config.AnalyzerVader:
		analyzer = nlp.NewVaderAnalyzer()
	default:
		analyzer = nlp.NewEmotionAnalyzer(cfg.Model(), cfg.ModelDir)
	}

	youtube := clients.NewYouTubeClient(cfg.YouTubeAPIKey, cfg.YouTubeRPS)
	cache := clients.InitValkey(cfg.ValkeyAddress, cfg.ValkeyPassword, cfg.ValkeyTLS)
	defer clients.CloseValkey()

	pipeline := analysis.NewPipeline(
		youtube,
		cache,
		nlp.NewTextPreprocessor(cfg.AnalysisLanguage),
		analyzer,
		renderer,
		cfg.MaxComments,
		cfg.PipelineTimeout,
	)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.NewHandler(pipeline))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		slog.Info("[Main] Starting server",
			slog.Int("port", cfg.Port),
			slog.String("language", cfg.AnalysisLanguage),
			slog.String("analyzer", cfg.Analyzer))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Warn("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown", slog.String("error", err.Error()))
	}
}
