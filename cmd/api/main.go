package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"goa.design/clue/health"
	"goa.design/clue/log"

	"marvelapi/docs"
	"marvelapi/internal/config"
	"marvelapi/internal/database"
	"marvelapi/internal/database/schema"
	handlers "marvelapi/internal/http/handler"
	"marvelapi/internal/http/middleware"
	"marvelapi/internal/otel"
	"marvelapi/internal/repository/mongo"
	"marvelapi/internal/service"
	"marvelapi/internal/storage"
)

// @title Marvel API
// @version 1.0
// @description Read-only access to Marvel characters and comics.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logOpts := logOptions(cfg.Log)
	ctx := log.Context(context.Background(), logOpts...)

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatal(ctx, err)
	}

	client, err := database.NewMongo(cfg.Store)
	if err != nil {
		log.Fatal(ctx, err)
	}
	db := client.Database(cfg.Store.Name)
	if err := schema.EnsureCollections(ctx, schema.Database(db)); err != nil {
		log.Fatal(ctx, err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gw, err := mongo.New(mongo.Options{
		Client:     client,
		Database:   cfg.Store.Name,
		Timeout:    cfg.Store.Timeout,
		Registerer: reg,
	})
	if err != nil {
		log.Fatal(ctx, err)
	}

	pingers := []health.Pinger{gw}

	// Artwork links are optional
	var art storage.Storage
	if cfg.MinIO.Endpoint != "" {
		art, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal(ctx, err)
		}
		pingers = append(pingers, art)
	} else {
		log.Info(ctx, log.KV{K: "msg", V: "artwork links disabled"})
	}

	svc := service.NewQueryService(
		mongo.NewCharacterMongo(gw),
		mongo.NewComicMongo(gw),
		art,
		cfg.MinIO.URLTTL,
	)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal(ctx, err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(logOpts...))

	handlers.RegisterRoutes(app, health.NewChecker(pingers...), svc)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Print(ctx, log.KV{K: "msg", V: "listening"}, log.KV{K: "addr", V: addr})
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		log.Error(ctx, err, log.KV{K: "msg", V: "server stopped"})
	case <-sigCtx.Done():
		log.Print(ctx, log.KV{K: "msg", V: "shutting down"})
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "http shutdown"})
	}

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(cleanupCtx); err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "store disconnect"})
	}
	if err := shutdownTracing(cleanupCtx); err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "tracing shutdown"})
	}
}

func logOptions(c config.LogConfig) []log.LogOption {
	format := log.FormatJSON
	if c.Format == "terminal" || (c.Format == "" && log.IsTerminal()) {
		format = log.FormatTerminal
	}
	opts := []log.LogOption{log.WithFormat(format)}
	if c.Debug {
		opts = append(opts, log.WithDebug())
	}
	return opts
}
