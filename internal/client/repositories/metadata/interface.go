// Package metadata persists small key-value records on the client: the bearer
// token and a few remembered values such as the last username.
package metadata

import (
	"context"
)

// Repository is a key-value store. Get returns (nil, nil) for absent keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
