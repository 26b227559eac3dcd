package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusdesk/campusdesk/internal/app"
	"github.com/campusdesk/campusdesk/internal/auth"
	"github.com/campusdesk/campusdesk/internal/guard"
	"github.com/campusdesk/campusdesk/internal/platform/cache"
	"github.com/campusdesk/campusdesk/internal/platform/db"
	"github.com/campusdesk/campusdesk/internal/registry/activities"
	"github.com/campusdesk/campusdesk/internal/registry/grades"
	"github.com/campusdesk/campusdesk/internal/registry/memberships"
	"github.com/campusdesk/campusdesk/internal/registry/students"
	"github.com/campusdesk/campusdesk/internal/token"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	tokenService := token.NewService(cfg.TokenSecret)
	accessGuard := guard.Middleware{Tokens: tokenService, Logger: logger}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, tokenService)
	authHandler := auth.NewHandler(logger, authService)

	if err := auth.EnsureAdmin(ctx, authRepo, logger, cfg.BootstrapAdminUser, cfg.BootstrapAdminPassword); err != nil {
		logger.Error("bootstrap admin", slog.Any("error", err))
		os.Exit(1)
	}

	gradeRepo := grades.NewRepository(dbpool)
	gradeService := grades.NewService(gradeRepo)
	gradeHandler := grades.NewHandler(logger, gradeService)

	membershipRepo := memberships.NewRepository(dbpool)
	membershipService := memberships.NewService(membershipRepo)
	membershipHandler := memberships.NewHandler(logger, membershipService)

	activityRepo := activities.NewRepository(dbpool)
	activityCache := activities.NewCache(redisClient, cfg.ActivityCacheTTL)
	activityService := activities.NewService(activityRepo, activityCache)
	activityHandler := activities.NewHandler(logger, activityService)

	studentRepo := students.NewRepository(dbpool)
	studentService := students.NewService(studentRepo, gradeRepo, membershipRepo, activityRepo)
	studentHandler := students.NewHandler(logger, studentService)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		Guard:             accessGuard,
		AuthHandler:       authHandler,
		StudentHandler:    studentHandler,
		GradeHandler:      gradeHandler,
		MembershipHandler: membershipHandler,
		ActivityHandler:   activityHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
