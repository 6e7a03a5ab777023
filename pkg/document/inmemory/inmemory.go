// Package inmemory keeps documents in process memory. Used by tests and by
// the inmemory storage backend; nothing survives a restart.
package inmemory

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Config mirrors the go-cache knobs, both in seconds.
type Config struct {
	DefaultExpiration int
	CleanupInterval   int
}

type Store struct {
	c *gocache.Cache
}

func NewStore(config *Config) (*Store, error) {
	if config == nil {
		config = &Config{DefaultExpiration: 300, CleanupInterval: 600}
	}
	c := gocache.New(
		time.Duration(config.DefaultExpiration)*time.Second,
		time.Duration(config.CleanupInterval)*time.Second,
	)
	return &Store{c: c}, nil
}

// Document returns the document stored under the given key.
func (s *Store) Document(key string) *Document {
	return &Document{c: s.c, key: key}
}

// Document is one whole-read/whole-write slot held in memory. Documents are
// written without expiration; the configured TTLs only govern transient
// entries other users of the cache may add.
type Document struct {
	c   *gocache.Cache
	key string
}

func (d *Document) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := d.c.Get(d.key)
	if !ok {
		return nil, fmt.Errorf("document %q not provisioned", d.key)
	}
	data := v.([]byte)
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (d *Document) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	d.c.Set(d.key, stored, gocache.NoExpiration)
	return nil
}
