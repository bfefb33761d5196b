package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/config"
	"github.com/mcallister/ro-casework/internal/db"
	"github.com/mcallister/ro-casework/internal/handler"
	"github.com/mcallister/ro-casework/internal/handler/server"
	"github.com/mcallister/ro-casework/internal/repository"
	"github.com/mcallister/ro-casework/internal/repository/postgres"
	"github.com/mcallister/ro-casework/internal/repository/rediscache"
	"github.com/mcallister/ro-casework/internal/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	database := db.MustLoad(cfg)
	defer database.Close()
	logger.Info("connected to database")

	if err := db.Migrate(database); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	var caseRepo repository.CaseRepository = postgres.NewCaseRepository(database)
	if cfg.Cache.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			logger.Fatal("invalid redis url", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		caseRepo = rediscache.NewCaseRepository(caseRepo, rdb, cfg.Cache.TTL, logger)
		logger.Info("case cache enabled")
	}

	accountRepo := postgres.NewAccountRepository(database)
	hospitalRepo := postgres.NewHospitalRepository(database)
	meetingRepo := postgres.NewMeetingRepository(database)
	documentRepo := postgres.NewDocumentRepository(database)
	teamUpdateRepo := postgres.NewTeamUpdateRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(accountRepo, tokens)
	caseService := service.NewCaseService(caseRepo, documentRepo)
	hospitalService := service.NewHospitalService(hospitalRepo)
	meetingService := service.NewMeetingService(meetingRepo)
	documentService := service.NewDocumentService(documentRepo)
	teamUpdateService := service.NewTeamUpdateService(teamUpdateRepo)
	statsService := service.NewStatsService(statsRepo, caseRepo)

	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAccount(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			logger.Fatal("failed to bootstrap account", zap.Error(err))
		}
	}

	h := handler.NewHandler(
		authService,
		caseService,
		hospitalService,
		meetingService,
		documentService,
		teamUpdateService,
		statsService,
		logger,
	)
	srv := server.NewServer(h, tokens, cfg.Addr, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
