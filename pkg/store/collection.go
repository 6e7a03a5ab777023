package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rosterhq/rosterd/pkg/document"
)

// collection is the generic load-mutate-persist cycle over one document
// holding an ordered sequence of records keyed by a designated field. Every
// operation reads the full document; every mutation rewrites it whole, so the
// cost is O(collection size) regardless of how small the change is.
type collection[T any] struct {
	// entity is the singular record name used in error messages ("user").
	entity string
	doc    document.Document
	keyOf  func(*T) string

	// mu makes each read-modify-write cycle a single critical section, so
	// mutations to the same collection are applied atomically and in a
	// total order. Plain reads go to the document directly.
	mu sync.Mutex
}

func newCollection[T any](entity string, doc document.Document, keyOf func(*T) string) *collection[T] {
	return &collection[T]{
		entity: entity,
		doc:    doc,
		keyOf:  keyOf,
	}
}

// loadAll deserializes the full document.
func (c *collection[T]) loadAll(ctx context.Context) ([]T, error) {
	data, err := c.doc.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s document: %w: %w", c.entity, ErrStorageUnavailable, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s document: %w: %w", c.entity, ErrCorruptDocument, err)
	}
	if records == nil {
		// a JSON null parses without error but is not a record sequence
		return nil, fmt.Errorf("parsing %s document: %w: expected an array of records", c.entity, ErrCorruptDocument)
	}
	return records, nil
}

// saveAll serializes the records and fully overwrites the document.
func (c *collection[T]) saveAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w: %w", c.entity, ErrStorageUnavailable, err)
	}
	if err := c.doc.Write(ctx, data); err != nil {
		return fmt.Errorf("writing %s document: %w: %w", c.entity, ErrStorageUnavailable, err)
	}
	return nil
}

// findByKey scans in insertion order and returns the index of the first
// record with the given key.
func (c *collection[T]) findByKey(records []T, key string) (int, bool) {
	for i := range records {
		if c.keyOf(&records[i]) == key {
			return i, true
		}
	}
	return -1, false
}

// insert appends the record if the key is not taken and persists.
func (c *collection[T]) insert(ctx context.Context, key string, record T) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := c.findByKey(records, key); ok {
		return nil, fmt.Errorf("%s %q: %w", c.entity, key, ErrAlreadyExists)
	}

	records = append(records, record)
	if err := c.saveAll(ctx, records); err != nil {
		return nil, err
	}
	return &record, nil
}

// removeByKey filters the record out and persists, returning the removed record.
func (c *collection[T]) removeByKey(ctx context.Context, key string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	i, ok := c.findByKey(records, key)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.entity, key, ErrNotFound)
	}

	removed := records[i]
	records = append(records[:i], records[i+1:]...)
	if err := c.saveAll(ctx, records); err != nil {
		return nil, err
	}
	return &removed, nil
}

// update applies mutate to the record with the given key and persists the
// full document even when mutate changed nothing, matching the membership
// semantics of the collection: the record is rewritten and returned either way.
func (c *collection[T]) update(ctx context.Context, key string, mutate func(*T)) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	i, ok := c.findByKey(records, key)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", c.entity, key, ErrNotFound)
	}

	mutate(&records[i])
	if err := c.saveAll(ctx, records); err != nil {
		return nil, err
	}

	updated := records[i]
	return &updated, nil
}
