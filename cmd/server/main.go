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

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/concert-watch-rooms/internal/catalog"
	"github.com/iliyamo/concert-watch-rooms/internal/config"
	"github.com/iliyamo/concert-watch-rooms/internal/database"
	"github.com/iliyamo/concert-watch-rooms/internal/directory"
	"github.com/iliyamo/concert-watch-rooms/internal/handler"
	"github.com/iliyamo/concert-watch-rooms/internal/logger"
	"github.com/iliyamo/concert-watch-rooms/internal/middleware"
	"github.com/iliyamo/concert-watch-rooms/internal/queue"
	"github.com/iliyamo/concert-watch-rooms/internal/repository"
	"github.com/iliyamo/concert-watch-rooms/internal/router"
	"github.com/iliyamo/concert-watch-rooms/internal/service"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel, cfg.IsProd())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat := catalog.Default()
	dir := directory.New(cat)
	if cfg.SeedDemoRooms {
		if err := dir.SeedDemo(); err != nil {
			zl.Fatal("seed demo rooms", zap.Error(err))
		}
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		zl.Warn("redis unavailable; rate limit, join throttle and cache disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	var base verifier.CredentialVerifier
	switch cfg.Verifier {
	case config.VerifierSQL:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			zl.Fatal("database", zap.Error(err))
		}
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			zl.Fatal("database schema", zap.Error(err))
		}
		base = verifier.NewSQL(repository.NewMemberRepo(db))
	case config.VerifierStatic:
		base = verifier.ParseStatic(cfg.StaticCredentials)
	default:
		base = verifier.RoomPin{}
	}
	ver := verifier.NewThrottled(base, rdb, config.LoadJoinThrottleConfig(), zl)

	amqpCfg := config.LoadAMQPConfig()
	creator := service.NewRoomCreator(dir, queue.NewPublisher(amqpCfg, zl), cfg.InviteTimeout, zl)
	gate := service.NewJoinGate(dir, ver, cfg.JoinVerifyTimeout, zl)

	if amqpCfg.ConsumerEnabled {
		go func() {
			if err := queue.NewConsumer(amqpCfg, zl).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				zl.Error("invite consumer stopped", zap.Error(err))
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(zl))

	deps := router.Deps{
		JWTSecret: cfg.JWTSecret,
		JoinLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, zl),
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb, zl),
	}
	router.RegisterRoutes(e)
	router.RegisterConcerts(e, handler.NewConcertHandler(cat, zl), deps)
	router.RegisterRooms(e, handler.NewRoomHandler(dir, creator, gate, cfg.JWTSecret, cfg.RoomTokenTTL, amqpCfg.AppLink, zl), deps)

	addr := ":" + cfg.Port
	go func() {
		zl.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env),
			zap.String("verifier", cfg.Verifier), zap.Int("concerts", cat.Len()))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	creator.Wait()
}
