package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pet-shelter-registry/internal/ports/auth"
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record arma y persiste un EditRecord. Se llama siempre DESPUÉS de la
// mutación de datos; si el append falla no hay rollback de la mutación.
func (s *Service) Record(ctx context.Context, op Op, collection, targetID string, change map[string]any, actor auth.Claims) (EditRecord, error) {
	r := EditRecord{
		ID:         s.newID(),
		At:         s.now(),
		Op:         op,
		Collection: collection,
		TargetID:   targetID,
		Change:     change,
		Auth:       actor,
	}

	if err := r.Validate(); err != nil {
		return EditRecord{}, err
	}
	if err := s.repo.Append(ctx, r); err != nil {
		return EditRecord{}, err
	}
	return r, nil
}

// History devuelve los registros de un documento, más reciente primero.
func (s *Service) History(ctx context.Context, collection, targetID string) ([]EditRecord, error) {
	return s.repo.ListByTarget(ctx, collection, targetID)
}
