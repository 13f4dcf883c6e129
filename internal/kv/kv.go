// Package kv provides the prefix-scanned key-value substrate backing
// report storage. Values are opaque byte payloads; callers own the
// encoding.
package kv

import "context"

// Store is the storage contract the persistence layer consumes.
// ScanPrefix returns the values of every entry whose key starts with
// prefix, in no guaranteed order; callers sort.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ScanPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
