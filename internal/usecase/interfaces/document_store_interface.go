package interfaces

//go:generate mockgen -source=document_store_interface.go -destination=mocks/document_store_interface_mock.go -package=mock_interfaces

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by IDocumentStore.Update when the target
// document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// IDocumentStore is a hierarchical document collection addressed by
// slash-separated paths such as "bookings/{id}" or
// "customers/{customerId}/bookings/{id}".
//
// Every write touches exactly one document; there is no multi-path transaction.
// Values returned by Get and List are JSON-shaped (string, float64, bool, nil,
// []any, map[string]any) regardless of backend.
type IDocumentStore interface {
	// Get returns nil, nil when the document is absent.
	Get(ctx context.Context, path string) (map[string]any, error)
	// Set replaces the document, or merges top-level fields into it when merge is true.
	// Either way the document is created if missing.
	Set(ctx context.Context, path string, fields map[string]any, merge bool) error
	// Update merges top-level fields into an existing document.
	Update(ctx context.Context, path string, fields map[string]any) error
	// Delete is idempotent.
	Delete(ctx context.Context, path string) error
	// List returns the direct children of a collection path.
	List(ctx context.Context, collectionPath string) ([]map[string]any, error)
}
