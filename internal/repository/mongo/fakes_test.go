package mongo

import (
	"context"
	"errors"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeConnector struct {
	colls      map[string]*fakeCollection
	acquireErr error
	pingErr    error
	acquired   int
	released   int
}

func newFakeConnector() *fakeConnector {
	return &fakeConnector{colls: map[string]*fakeCollection{}}
}

func (f *fakeConnector) coll(name string) *fakeCollection {
	c, ok := f.colls[name]
	if !ok {
		c = &fakeCollection{}
		f.colls[name] = c
	}
	return c
}

func (f *fakeConnector) Acquire(ctx context.Context) (conn, error) {
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	f.acquired++
	return fakeConn{f: f}, nil
}

func (f *fakeConnector) Ping(ctx context.Context) error { return f.pingErr }

type fakeConn struct {
	f *fakeConnector
}

func (c fakeConn) Collection(name string) collection { return c.f.coll(name) }
func (c fakeConn) Release(ctx context.Context)       { c.f.released++ }

type fakeCollection struct {
	docs    []any
	err     error
	filter  any
	options FindOptions
}

func (c *fakeCollection) FindOne(ctx context.Context, filter any) singleResult {
	c.filter = filter
	if c.err != nil {
		return fakeSingleResult{err: c.err}
	}
	if len(c.docs) == 0 {
		return fakeSingleResult{err: mongodriver.ErrNoDocuments}
	}
	return fakeSingleResult{doc: c.docs[0]}
}

func (c *fakeCollection) Find(ctx context.Context, filter any, opts FindOptions) (cursor, error) {
	c.filter = filter
	c.options = opts
	if c.err != nil {
		return nil, c.err
	}
	docs := c.docs
	if opts.Skip > 0 {
		if int(opts.Skip) >= len(docs) {
			docs = nil
		} else {
			docs = docs[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int(opts.Limit) < len(docs) {
		docs = docs[:opts.Limit]
	}
	return &fakeCursor{docs: docs, idx: -1}, nil
}

func (c *fakeCollection) CountDocuments(ctx context.Context, filter any) (int64, error) {
	c.filter = filter
	if c.err != nil {
		return 0, c.err
	}
	return int64(len(c.docs)), nil
}

type fakeSingleResult struct {
	doc any
	err error
}

func (r fakeSingleResult) Decode(val any) error {
	if r.err != nil {
		return r.err
	}
	return assign(val, r.doc)
}

type fakeCursor struct {
	docs []any
	idx  int
}

func (c *fakeCursor) Next(ctx context.Context) bool {
	if c.idx+1 >= len(c.docs) {
		return false
	}
	c.idx++
	return true
}

func (c *fakeCursor) Decode(val any) error            { return assign(val, c.docs[c.idx]) }
func (c *fakeCursor) Err() error                      { return nil }
func (c *fakeCursor) Close(ctx context.Context) error { return nil }

func assign(val, doc any) error {
	switch typed := val.(type) {
	case *characterDocument:
		*typed = doc.(characterDocument)
	case *comicDocument:
		*typed = doc.(comicDocument)
	default:
		return errors.New("unexpected decode target")
	}
	return nil
}
