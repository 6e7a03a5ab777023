// Package cached decorates a document with a read-through TTL cache. Writes
// go straight to the inner document and refresh the cached copy, so a reader
// in the same process always sees its own writes. The cache is only coherent
// while this process is the sole writer of the inner document.
package cached

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rosterhq/rosterd/pkg/document"
)

type Document struct {
	inner document.Document
	c     *gocache.Cache
	key   string
	ttl   time.Duration
}

func New(inner document.Document, key string, ttl time.Duration) *Document {
	return &Document{
		inner: inner,
		c:     gocache.New(ttl, 2*ttl),
		key:   key,
		ttl:   ttl,
	}
}

func (d *Document) Read(ctx context.Context) ([]byte, error) {
	if v, ok := d.c.Get(d.key); ok {
		return clone(v.([]byte)), nil
	}

	data, err := d.inner.Read(ctx)
	if err != nil {
		return nil, err
	}
	d.c.Set(d.key, clone(data), d.ttl)
	return data, nil
}

func (d *Document) Write(ctx context.Context, data []byte) error {
	if err := d.inner.Write(ctx, data); err != nil {
		// the inner state is unknown, drop the cached copy
		d.c.Delete(d.key)
		return err
	}
	d.c.Set(d.key, clone(data), d.ttl)
	return nil
}

func clone(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
