package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/eventpass/internal/api/http"
	"github.com/spec-kit/eventpass/internal/api/http/handlers"
	"github.com/spec-kit/eventpass/internal/auth"
	"github.com/spec-kit/eventpass/internal/config"
	"github.com/spec-kit/eventpass/internal/observability"
	"github.com/spec-kit/eventpass/internal/persistence"
	"github.com/spec-kit/eventpass/internal/report"
	"github.com/spec-kit/eventpass/internal/repository"
	"github.com/spec-kit/eventpass/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	qrRepo := repository.NewMarketingQRRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	qrCache := repository.NewQRCache(redis.Client, cfg.Resolver.CacheTTL())

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	userService := service.NewUserService(userRepo, tokenManager, cfg.Auth.BcryptCost)
	eventService := service.NewEventService(eventRepo)
	ticketService := service.NewTicketService(ticketRepo)
	marketingService := service.NewMarketingService(qrRepo, qrCache)
	leadService := service.NewLeadService(leadRepo)

	pdfGenerator := report.NewTicketPDFGenerator(cfg.Report.FontPath)
	authMiddleware := auth.NewAuthMiddleware(tokenManager)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(userService),
		Events:         handlers.NewEventsHandler(eventService),
		Tickets:        handlers.NewTicketsHandler(ticketService, eventService, pdfGenerator),
		Marketing:      handlers.NewMarketingHandler(marketingService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Resolver:       handlers.NewResolverHandler(marketingService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
