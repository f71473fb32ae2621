package storage

import "context"

// AudioStore persists one synthesized audio artifact under key and returns the reference
// handed back to API callers.
type AudioStore interface {
	Save(ctx context.Context, key string, audio []byte) (string, error)
}
