package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/qolda-ai/support-desk/internal/ai"
	httptransport "github.com/qolda-ai/support-desk/internal/api/http"
	"github.com/qolda-ai/support-desk/internal/api/http/handlers"
	"github.com/qolda-ai/support-desk/internal/config"
	"github.com/qolda-ai/support-desk/internal/events"
	"github.com/qolda-ai/support-desk/internal/i18n"
	"github.com/qolda-ai/support-desk/internal/observability"
	"github.com/qolda-ai/support-desk/internal/persistence"
	"github.com/qolda-ai/support-desk/internal/service"
	"github.com/qolda-ai/support-desk/internal/session"
	"github.com/qolda-ai/support-desk/internal/store"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	dispatcher := events.NewInMemoryDispatcher()

	ticketStore := store.New(dispatcher)
	if cfg.App.Env == "development" {
		ticketStore.Seed(store.DemoTickets(time.Now()))
	}

	var classifier ai.Classifier = ai.NewClient(cfg.Gemini)
	classifier = ai.NewCachedClassifier(classifier, redis.Client, cfg.Redis.AnalysisCacheTTL(), logger)

	chatSession := session.New(ticketStore, classifier, dispatcher, i18n.DefaultLang, cfg.Session.InactivityTimeout(), logger)

	triageService := service.NewTriageService(ticketStore, classifier, logger)
	notificationFeed := service.NewNotificationFeed(dispatcher, logger)
	notificationFeed.RegisterHandlers()

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Chat:          handlers.NewChatHandler(chatSession),
		Tickets:       handlers.NewTicketsHandler(triageService),
		Notifications: handlers.NewNotificationsHandler(notificationFeed),
		Locale:        handlers.NewLocaleHandler(),
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
