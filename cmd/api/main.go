package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecomanager/api/internal/auth"
	"github.com/ecomanager/api/internal/config"
	"github.com/ecomanager/api/internal/db"
	internalhttp "github.com/ecomanager/api/internal/http"
	"github.com/ecomanager/api/internal/repo"
	"github.com/ecomanager/api/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("api encerrada com erro")
	}
}

func run() error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis parse: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	repository := repo.New(pool)

	if err := bootstrap(ctx, repository); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTTL)
	authService := service.NewAuthService(repository, redisClient, jwtManager, cfg.JWTRefreshTTL)
	dashboardService := service.NewDashboardService(repository)

	handler := internalhttp.NewRouter(cfg, repository, authService, dashboardService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("API ouvindo em :%d", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("encerrando...")
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// bootstrap semeia a conta admin padrão e os registros de exemplo quando o
// banco ainda está vazio. A senha padrão deve ser trocada em produção.
func bootstrap(ctx context.Context, repository *repo.Queries) error {
	exists, err := repository.HasAdminUser(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	log.Info().Msg("criando usuário admin...")

	hash, err := auth.Hash("password")
	if err != nil {
		return err
	}

	return repository.Seed(ctx, hash)
}
