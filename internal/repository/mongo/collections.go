package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// FindOptions controls ordering and windowing of a find. Zero Skip or Limit is ignored.
type FindOptions struct {
	Sort  bson.D
	Skip  int64
	Limit int64
}

type (
	connector interface {
		Acquire(ctx context.Context) (conn, error)
		Ping(ctx context.Context) error
	}

	conn interface {
		Collection(name string) collection
		Release(ctx context.Context)
	}

	collection interface {
		FindOne(ctx context.Context, filter any) singleResult
		Find(ctx context.Context, filter any, opts FindOptions) (cursor, error)
		CountDocuments(ctx context.Context, filter any) (int64, error)
	}

	singleResult interface {
		Decode(val any) error
	}

	cursor interface {
		Next(ctx context.Context) bool
		Decode(val any) error
		Err() error
		Close(ctx context.Context) error
	}
)

// mongoConnector hands out one driver session per call on top of the pooled client.
type mongoConnector struct {
	client   *mongodriver.Client
	database string
}

func (c mongoConnector) Acquire(ctx context.Context) (conn, error) {
	sess, err := c.client.StartSession()
	if err != nil {
		return nil, err
	}
	return &mongoConn{db: c.client.Database(c.database), sess: sess}, nil
}

func (c mongoConnector) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

type mongoConn struct {
	db   *mongodriver.Database
	sess *mongodriver.Session
}

func (c *mongoConn) Collection(name string) collection {
	return mongoCollection{coll: c.db.Collection(name), sess: c.sess}
}

func (c *mongoConn) Release(ctx context.Context) {
	c.sess.EndSession(ctx)
}

type mongoCollection struct {
	coll *mongodriver.Collection
	sess *mongodriver.Session
}

func (c mongoCollection) FindOne(ctx context.Context, filter any) singleResult {
	return c.coll.FindOne(mongodriver.NewSessionContext(ctx, c.sess), filter)
}

func (c mongoCollection) Find(ctx context.Context, filter any, o FindOptions) (cursor, error) {
	opts := options.Find()
	if len(o.Sort) > 0 {
		opts.SetSort(o.Sort)
	}
	if o.Skip > 0 {
		opts.SetSkip(o.Skip)
	}
	if o.Limit > 0 {
		opts.SetLimit(o.Limit)
	}
	cur, err := c.coll.Find(mongodriver.NewSessionContext(ctx, c.sess), filter, opts)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (c mongoCollection) CountDocuments(ctx context.Context, filter any) (int64, error) {
	return c.coll.CountDocuments(mongodriver.NewSessionContext(ctx, c.sess), filter)
}
