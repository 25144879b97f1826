// Package store is the Persisted Store of the MindMate client: a small
// durable key-value store holding the signed-in user and the per-user
// data snapshots, backed by SQLite.
package store

import "context"

// Store is a byte-valued key-value store. Get returns (nil, nil) for an
// absent key and Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UserKey is the key of the saved signed-in user.
func UserKey(app string) string {
	return app + "_user"
}

// DataKey is the key of a user's data snapshot.
func DataKey(app, userID string) string {
	return app + "_data_" + userID
}
