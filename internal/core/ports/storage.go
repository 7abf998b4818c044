package ports

import "context"

// Durable storage keys. Absence of a key means unset, never an empty string.
const (
	StorageKeyToken       = "token"
	StorageKeyUser        = "user"
	StorageKeyPermissions = "permissions"
)

// SessionStorage is the durable key-value store backing the session across
// process restarts.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
