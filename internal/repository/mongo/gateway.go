// Package mongo implements the character and comic repositories on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"marvelapi/internal/repository"
)

const (
	defaultOpTimeout = 5 * time.Second
	gatewayName      = "mongo"
	tracerName       = "marvelapi/internal/repository/mongo"
)

// Options configures the Gateway.
type Options struct {
	Client   *mongodriver.Client
	Database string
	Timeout  time.Duration
	// Registerer receives the store query metrics. Nil disables them.
	Registerer prometheus.Registerer
}

// Gateway is the only component that talks to the store. Every call acquires its
// own connection, runs one query, materializes the results and releases the
// connection before returning.
type Gateway struct {
	connector connector
	timeout   time.Duration
	tracer    trace.Tracer
	queries   *prometheus.CounterVec
}

// New returns a Gateway backed by the given client and database.
func New(opts Options) (*Gateway, error) {
	if opts.Client == nil {
		return nil, errors.New("mongo client is required")
	}
	if opts.Database == "" {
		return nil, errors.New("database name is required")
	}
	return newGateway(mongoConnector{client: opts.Client, database: opts.Database}, opts.Timeout, opts.Registerer)
}

func newGateway(c connector, timeout time.Duration, reg prometheus.Registerer) (*Gateway, error) {
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	g := &Gateway{
		connector: c,
		timeout:   timeout,
		tracer:    otel.Tracer(tracerName),
	}
	if reg != nil {
		g.queries = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marvel_store_queries_total",
				Help: "Total number of document store queries by collection, operation and outcome.",
			},
			[]string{"collection", "op", "status"},
		)
		if err := reg.Register(g.queries); err != nil {
			return nil, fmt.Errorf("register store metrics: %w", err)
		}
	}
	return g, nil
}

// Name implements health.Pinger.
func (g *Gateway) Name() string {
	return gatewayName
}

// Ping implements health.Pinger.
func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.connector.Ping(ctx)
}

// FindOne decodes the first record of coll matching filter into out.
// It returns repository.ErrNotFound when nothing matches.
func (g *Gateway) FindOne(ctx context.Context, coll string, filter any, out any) error {
	return g.run(ctx, coll, "find_one", func(ctx context.Context, c collection) error {
		err := c.FindOne(ctx, filter).Decode(out)
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return repository.ErrNotFound
		}
		return err
	})
}

// Count returns the number of records of coll matching filter.
func (g *Gateway) Count(ctx context.Context, coll string, filter any) (int64, error) {
	var n int64
	err := g.run(ctx, coll, "count", func(ctx context.Context, c collection) error {
		var err error
		n, err = c.CountDocuments(ctx, filter)
		return err
	})
	return n, err
}

// findMany materializes every record of coll matching filter, ordered and windowed by opts.
func findMany[D any](ctx context.Context, g *Gateway, coll string, filter any, opts FindOptions) ([]D, error) {
	docs := make([]D, 0)
	err := g.run(ctx, coll, "find", func(ctx context.Context, c collection) error {
		cur, err := c.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var doc D
			if err := cur.Decode(&doc); err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return cur.Err()
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (g *Gateway) run(ctx context.Context, coll, op string, fn func(context.Context, collection) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := g.tracer.Start(ctx, "mongo."+op, trace.WithAttributes(
		attribute.String("db.system", "mongodb"),
		attribute.String("db.collection.name", coll),
	))
	defer func() {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		g.observe(coll, op, err)
	}()

	cn, err := g.connector.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer cn.Release(context.WithoutCancel(ctx))

	return fn(ctx, cn.Collection(coll))
}

func (g *Gateway) observe(coll, op string, err error) {
	if g.queries == nil {
		return
	}
	status := "ok"
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	g.queries.WithLabelValues(coll, op, status).Inc()
}
