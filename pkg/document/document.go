// Package document defines the storage contract for a collection's document:
// one serialized artifact, always read and written whole. Concrete backends
// live in the subpackages (file, redis, inmemory) plus a read-through cache
// decorator (cached).
package document

import "context"

// Document is a single whole-read/whole-write storage slot. Implementations
// return their backend's native errors; the store layer is responsible for
// classifying them. A document that has never been written reads as an error,
// not as empty content - provisioning the initial state is deployment tooling's
// job (see cmd/rosterd-init).
type Document interface {
	// Read returns the full serialized content.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the full serialized content.
	Write(ctx context.Context, data []byte) error
}
