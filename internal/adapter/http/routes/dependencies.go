package routes

import (
	"context"
	"fmt"

	"limpeza_xpto/internal/adapter/http/handlers"
	"limpeza_xpto/internal/adapter/persistence/documentstore"
	"limpeza_xpto/internal/adapter/persistence/repository"
	"limpeza_xpto/internal/infrastructure/config"
	"limpeza_xpto/internal/infrastructure/database"
	"limpeza_xpto/internal/infrastructure/messaging"
	"limpeza_xpto/internal/infrastructure/payments"
	"limpeza_xpto/internal/usecase"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

type dependencies struct {
	bookingHandler    *handlers.BookingHandler
	assignmentHandler *handlers.AssignmentHandler
	syncHandler       *handlers.SyncHandler
	paymentHandler    *handlers.PaymentHandler
	crewHandler       *handlers.CrewHandler

	worker   *usecase.ReconcileWorker
	replayer *usecase.IntentReplayer

	closers []func() error
}

func (d *dependencies) close() error {
	var firstErr error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// buildDependencies wires the object graph. Every collaborator is passed
// through constructors; nothing is kept in package state.
func buildDependencies(ctx context.Context, cfg config.Config, log logger.Logger, m *metrics.Metrics) (*dependencies, error) {
	deps := &dependencies{}

	store, closeStore, err := openDocumentStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, closeStore)

	intents, closeIntents, err := openIntentRepository(ctx, cfg, store, log)
	if err != nil {
		_ = deps.close()
		return nil, err
	}
	deps.closers = append(deps.closers, closeIntents)

	notifier, closeNotifier := openNotifier(cfg, log)
	deps.closers = append(deps.closers, closeNotifier)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("[routes] Mercado Pago gateway not configured", "error", err)
	} else {
		gateway = mpGateway
	}

	bookingRepo := repository.NewBookingDocumentRepository(store)
	mirrorRepo := repository.NewMirrorDocumentRepository(store)
	crewRepo := repository.NewCrewDocumentRepository(store)
	paymentRepo := repository.NewPaymentDocumentRepository(store)

	worker := usecase.NewReconcileWorker(intents, reconcileConfig(cfg), log, m)

	mirrorUC := usecase.NewMirrorUseCase(bookingRepo, mirrorRepo, log, m)
	syncUC := usecase.NewStatusSyncUseCase(bookingRepo, mirrorRepo, mirrorUC, log, m)
	ledgerUC := usecase.NewCrewLedgerUseCase(crewRepo, worker, log, m)
	assignmentUC := usecase.NewAssignmentUseCase(bookingRepo, syncUC, ledgerUC, worker, notifier, cfg.NotifyTimeout, log, m)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, mirrorRepo, mirrorUC, syncUC, ledgerUC, worker, notifier, cfg.NotifyTimeout, log, m)
	consistencyUC := usecase.NewConsistencyUseCase(bookingRepo, mirrorRepo, mirrorUC, log, m)
	paymentUC := usecase.NewPaymentUseCase(bookingRepo, paymentRepo, gateway, syncUC, worker, notifier, usecase.PaymentOptions{
		MockMode:           cfg.PaymentGatewayMock,
		AccessToken:        cfg.MercadoPagoAccessToken,
		SandboxPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		SandboxPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}, cfg.NotifyTimeout, log, m)

	deps.worker = worker
	deps.replayer = usecase.NewIntentReplayer(bookingRepo, mirrorUC, syncUC, ledgerUC, log)

	deps.bookingHandler = handlers.NewBookingHandler(bookingUC, log)
	deps.assignmentHandler = handlers.NewAssignmentHandler(assignmentUC, log)
	deps.syncHandler = handlers.NewSyncHandler(consistencyUC, log)
	deps.paymentHandler = handlers.NewPaymentHandler(paymentUC, log)
	deps.crewHandler = handlers.NewCrewHandler(ledgerUC)
	return deps, nil
}

func openDocumentStore(ctx context.Context, cfg config.Config, log logger.Logger) (interfaces.IDocumentStore, func() error, error) {
	noop := func() error { return nil }
	log.Info("[routes] opening document store", "driver", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return documentstore.NewDynamoStore(ddb, cfg.DocumentsTable), noop, nil
	case config.StoreMongoDB:
		client, err := database.ConnectMongoDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}
		store := documentstore.NewMongoStore(client.Database(cfg.MongoDB))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongodb indexes: %w", err)
		}
		return store, func() error { return client.Disconnect(context.Background()) }, nil
	case config.StoreBadger:
		db, err := database.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, nil, err
		}
		return documentstore.NewBadgerStore(db), db.Close, nil
	case config.StoreMemory:
		return documentstore.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// openIntentRepository keeps the outbox in Postgres when OUTBOX_POSTGRES_DSN is
// set, otherwise next to the bookings in the document store.
func openIntentRepository(ctx context.Context, cfg config.Config, store interfaces.IDocumentStore, log logger.Logger) (interfaces.ISyncIntentRepository, func() error, error) {
	if cfg.OutboxPostgresDSN == "" {
		return repository.NewSyncIntentDocumentRepository(store), func() error { return nil }, nil
	}
	db, err := database.ConnectPostgres(cfg.OutboxPostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("postgres handle: %w", err)
	}
	repo := repository.NewSyncIntentGormRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("migrate sync intents: %w", err)
	}
	log.Info("[routes] sync intents stored in postgres")
	return repo, sqlDB.Close, nil
}

func openNotifier(cfg config.Config, log logger.Logger) (interfaces.INotifier, func() error) {
	if cfg.RabbitURL == "" {
		return messaging.NewLogNotifier(log), func() error { return nil }
	}
	rabbit, err := messaging.NewRabbitNotifier(cfg.RabbitURL, cfg.RabbitExchange, log)
	if err != nil {
		log.Warn("[routes] rabbitmq unavailable, notifications go to the log", "error", err)
		return messaging.NewLogNotifier(log), func() error { return nil }
	}
	return rabbit, rabbit.Close
}

func reconcileConfig(cfg config.Config) usecase.ReconcileConfig {
	rc := usecase.DefaultReconcileConfig()
	rc.Interval = cfg.ReconcileInterval
	rc.MaxAttempts = cfg.ReconcileMaxAttempts
	rc.InitialDelay = cfg.ReconcileInitialBackoff
	rc.MaxDelay = cfg.ReconcileMaxBackoff
	rc.RatePerSecond = cfg.ReconcileRatePerSecond
	return rc
}
