package save

import "context"

// Store keeps encoded snapshots by key. Load returns consts.ErrorsSaveNotFound
// when nothing is stored under the key.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
