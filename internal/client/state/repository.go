// Package state implements the client's durable key→value store. The two
// keys in use mirror the original browser storage: "user" holds the JSON of
// the last successful login response and "history" holds the JSON array of
// looked-up IP addresses.
package state

import "context"

// Repository is a small durable key→value blob store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
