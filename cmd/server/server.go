package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sagaforge/saga-api/internal/engines"
	v1 "github.com/sagaforge/saga-api/internal/handlers/api/v1"
	charorch "github.com/sagaforge/saga-api/internal/orchestrators/character"
	charrepo "github.com/sagaforge/saga-api/internal/repositories/characters"
	draftrepo "github.com/sagaforge/saga-api/internal/repositories/draft"
	redisclient "github.com/sagaforge/saga-api/internal/redis"
)

// ServerConfig is read from the environment, optionally seeded by a .env
// file in the working directory.
type ServerConfig struct {
	Port          int    `envconfig:"PORT" default:"8080"`
	RedisEndpoint string `envconfig:"REDIS_ENDPOINT" default:"localhost:6379"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode       string `envconfig:"GIN_MODE" default:"release"`
	EnginesDir    string `envconfig:"ENGINES_DIR"`
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the saga API server with the built-in engines plus any loaded from ENGINES_DIR.`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	gin.SetMode(cfg.GinMode)

	catalog := engines.New()
	if cfg.EnginesDir != "" {
		if err := catalog.LoadDir(cfg.EnginesDir); err != nil {
			return err
		}
	}
	log.Info().Int("engines", len(catalog.List())).Msg("engine catalog ready")

	redis, err := redisclient.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}()

	characterRepo, err := charrepo.NewRedis(&charrepo.RedisConfig{Client: redis})
	if err != nil {
		return err
	}
	draftRepo := draftrepo.NewRedisRepository(redis)

	orchestrator, err := charorch.New(&charorch.Config{
		CharacterRepo: characterRepo,
		DraftRepo:     draftRepo,
		Catalog:       catalog,
	})
	if err != nil {
		return err
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{Service: orchestrator})
	if err != nil {
		return err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router.Group("/v1"))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown failed, forcing close")
			return srv.Close()
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
