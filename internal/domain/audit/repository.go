package audit

import "context"

// Repository es el store append-only del historial.
type Repository interface {
	Append(ctx context.Context, r EditRecord) error
	ListByTarget(ctx context.Context, collection, targetID string) ([]EditRecord, error)
}
