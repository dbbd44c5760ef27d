package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-shelter-registry/internal/domain/audit"
)

type auditRepo struct {
	mu      sync.RWMutex
	entries []audit.EditRecord
}

func NewAuditRepo() audit.Repository {
	return &auditRepo{
		entries: make([]audit.EditRecord, 0),
	}
}

// Append agrega al final; el slice nunca se reordena ni se recorta.
func (r *auditRepo) Append(ctx context.Context, rec audit.EditRecord) error {
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("edit record id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, rec)
	return nil
}

func (r *auditRepo) ListByTarget(ctx context.Context, collection, targetID string) ([]audit.EditRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Más reciente primero: se recorre el log al revés.
	out := make([]audit.EditRecord, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		rec := r.entries[i]
		if rec.Collection == collection && rec.TargetID == targetID {
			out = append(out, rec)
		}
	}
	return out, nil
}
