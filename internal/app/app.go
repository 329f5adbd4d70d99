package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Sarhan619/grocery-app/config"
	"github.com/Sarhan619/grocery-app/internal/adapter/httphandler"
	"github.com/Sarhan619/grocery-app/internal/adapter/kafka"
	"github.com/Sarhan619/grocery-app/internal/adapter/storage"
	"github.com/Sarhan619/grocery-app/internal/core/service"
	"github.com/Sarhan619/grocery-app/pkg/retry"
	"github.com/Sarhan619/grocery-app/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type services struct {
	catalog *service.CatalogService
	cart    *service.CartService
	admin   *service.AdminService
	contact *service.ContactService
}

type App struct {
	ctx context.Context
	cfg config.Config

	cartEventSerde schema.Serde
	db             storage.SQLDB
	eventsProducer kafka.CartEventsProducer
	popularityProc *kafka.PopularityProcessor
	popularityView kafka.PopularityView
	services       services
	httpServer     httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerde()
	app.initStorage()
	app.initOutboundAdapters()
	app.initServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerde() {
	const op = "App.initSerde"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.Topics.CartEvents + "-value"
	cartEventSerde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.cartEventSerde = cartEventSerde
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	retryCfg := retry.Config{
		MaxAttempts: 5,
		Backoff:     retry.FixedBackoff(2 * time.Second),
	}

	db, err := retry.DoWithResult(app.ctx, retryCfg,
		func() (storage.SQLDB, error) {
			return storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.db = db
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	seedBrokers := app.cfg.Broker.SeedBrokers
	topic := app.cfg.Broker.Topics.CartEvents
	group := app.cfg.Broker.Consumers.PopularityGroup

	eventsProducer, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(app.ctx, seedBrokers, topic),
		kafka.ProducerEncoderOpt(app.cartEventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	popularityProc, err := kafka.NewPopularityProc(
		seedBrokers, topic, group, app.cartEventSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	popularityView, err := kafka.NewPopularityView(seedBrokers, group)
	if err != nil {
		app.fallDown(op, err)
	}

	app.eventsProducer = eventsProducer
	app.popularityProc = popularityProc
	app.popularityView = popularityView
}

func (app *App) initServices() {
	const op = "App.initServices"

	catalogStorage := storage.NewCatalogStorage(app.db)

	catalog := service.NewCatalogService(catalogStorage)
	if err := catalog.Load(app.ctx); err != nil {
		app.fallDown(op, err)
	}

	cart := service.NewCartService(catalog, app.eventsProducer)
	admin := service.NewAdminService(
		catalogStorage,
		storage.NewProductsRepository(app.db),
		storage.NewCategoriesRepository(app.db),
		storage.NewBrandsRepository(app.db),
		app.popularityView,
		catalog,
	)
	contact := service.NewContactService(storage.NewContactRepository(app.db))

	app.services = services{
		catalog: catalog,
		cart:    cart,
		admin:   admin,
		contact: contact,
	}
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterCart(mux, app.services.cart, app.services.cart)
	httphandler.RegisterAdmin(mux, app.services.admin)
	httphandler.RegisterContact(mux, app.services.contact)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

// Run starts the HTTP server, the popularity processor and its view.
// Blocks while the processor is preparing to ready state.
func (app *App) Run(stopFn context.CancelFunc) {
	var wg sync.WaitGroup
	wg.Add(1)
	go app.popularityProc.Run(app.ctx, stopFn, &wg)
	wg.Wait()

	go app.popularityView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.eventsProducer.Close()
	app.popularityProc.Close()
	app.db.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
