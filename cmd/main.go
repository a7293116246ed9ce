package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ericmurielchan/chanmkt/internal/api"
	"github.com/ericmurielchan/chanmkt/internal/api/events"
	"github.com/ericmurielchan/chanmkt/internal/clients/advisor"
	"github.com/ericmurielchan/chanmkt/internal/clients/mailer"
	"github.com/ericmurielchan/chanmkt/internal/repository"
	"github.com/ericmurielchan/chanmkt/internal/service"
	"github.com/ericmurielchan/chanmkt/pkg/broker"
	"github.com/ericmurielchan/chanmkt/pkg/config"
	"github.com/ericmurielchan/chanmkt/pkg/job"
	"github.com/ericmurielchan/chanmkt/pkg/logger"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))

	userRepo := repository.NewUserRepository()
	clientRepo := repository.NewClientRepository()
	cardRepo := repository.NewCardRepository()
	supplierRepo := repository.NewSupplierRepository()
	notifRepo := repository.NewNotificationRepository()

	err = repository.Seed(ctx, userRepo, clientRepo, cardRepo, supplierRepo, cfg.SeedPassword)
	panicOnErr("seed repositories", err)

	var producer service.Broker = broker.Noop{}

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.RequestEventsTopic, cfg.Kafka.BillingEventsTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(cfg, userRepo, clientRepo, cardRepo, supplierRepo, notifRepo,
		producer, advisor.NewClient(cfg))

	blocked, err := s.BlockOverdueClients(ctx)
	panicOnErr("block overdue clients", err)

	slog.InfoContext(ctx, "startup delinquency sweep done", "blocked", blocked)

	// Kafka consumers
	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID,
			cfg.Kafka.RequestEventsTopic, cfg.Kafka.BillingEventsTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s, mailer.New(cfg.Mailer))

		consumer.Handle(cfg.Kafka.RequestEventsTopic, eventHandler.OnRequestEvent)
		consumer.Handle(cfg.Kafka.BillingEventsTopic, eventHandler.OnBillingEvent)
		consumer.Consume(ctx)
	}

	jobs := job.NewService()
	jobs.RegisterJob("payment_reminders", cfg.PaymentReminderInterval, s.SendPaymentReminders)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
