package ports

import "context"

// ProfileStore is the external document store holding public profiles.
type ProfileStore interface {
	// UpsertDocument creates or replaces the document stored under key.
	UpsertDocument(ctx context.Context, collectionPath, key string, fields map[string]any) error
	// FindDocument returns domain.ErrProfileNotFound when key is absent.
	FindDocument(ctx context.Context, collectionPath, key string) (map[string]any, error)
}
