package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/car-rental-service/internal/api/http"
	"github.com/spec-kit/car-rental-service/internal/api/http/handlers"
	"github.com/spec-kit/car-rental-service/internal/auth"
	"github.com/spec-kit/car-rental-service/internal/config"
	"github.com/spec-kit/car-rental-service/internal/events"
	"github.com/spec-kit/car-rental-service/internal/mail"
	"github.com/spec-kit/car-rental-service/internal/observability"
	"github.com/spec-kit/car-rental-service/internal/otp"
	"github.com/spec-kit/car-rental-service/internal/persistence"
	"github.com/spec-kit/car-rental-service/internal/repository"
	"github.com/spec-kit/car-rental-service/internal/service"
	"github.com/spec-kit/car-rental-service/internal/worker"
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
	bookingRepo := repository.NewBookingRepository(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	queue := worker.NewRedisQueue(redis.Client, cfg.Booking.RedeliveryQueue)
	dispatcher := events.NewInMemoryDispatcher()

	auditService := service.NewAuditService(dispatcher, logger)
	auditService.RegisterHandlers()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	bookingService := service.NewBookingService(service.BookingDependencies{
		UserRepo:    userRepo,
		BookingRepo: bookingRepo,
		Codes:       otp.NewGenerator(cfg.Booking.OTPTTL()),
		Mailer:      mailer,
		Queue:       queue,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})

	redelivery := worker.NewRedeliveryWorker(queue, bookingRepo, mailer, logger, cfg.Booking.RedeliveryInterval())
	redelivery.Start(ctx)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
