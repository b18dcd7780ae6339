// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/infra"
	"voyago/internal/maps"
	"voyago/internal/modules/cart"
	"voyago/internal/modules/plan"
	"voyago/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, cleanup, err := newProvider(ctx, cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("ai provider init")
	}
	defer cleanup()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	planStore := plan.NewStore(dbPool)
	if err := planStore.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("plans schema")
	}
	planCache := plan.NewCache(redisClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("maps init")
		}
	}

	planSvc := plan.NewService(provider, planStore, planCache, places)

	cartStore := cart.NewStore(redisClient, time.Duration(cfg.Cart.TTLHours)*time.Hour)
	cartSvc := cart.NewService(cartStore)

	observability.Serve(cfg.Metrics.Addr)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewRouter(planSvc, cartSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Str("provider", cfg.AI.Provider).Msg("voyago listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server")
	}
}

// newProvider builds the configured completion API client. The returned
// cleanup is a no-op for providers without resources to release.
func newProvider(ctx context.Context, cfg config.AIConfig) (ai.Provider, func(), error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err := ai.NewGeminiProvider(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		p, err := ai.NewOpenAIProvider("", cfg.OpenAIKey, cfg.OpenAIModel,
			time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.RequestsPerSec)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	}
}
