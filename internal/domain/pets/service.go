package pets

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pet-shelter-registry/internal/domain/audit"
	"pet-shelter-registry/internal/ports/auth"
)

// Collection es el nombre con que este módulo aparece en el historial.
const Collection = "pets"

var (
	// ErrNotFound lo devuelven los adapters cuando el id no matchea nada.
	ErrNotFound = errors.New("pet not found")

	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo  Repository
	audit *audit.Service
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, auditSvc *audit.Service) *Service {
	return &Service{
		repo:  repo,
		audit: auditSvc,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List ejecuta la especificación del listado. Solo lectura, sin auditoría.
func (s *Service) List(ctx context.Context, q Query) ([]Pet, error) {
	return s.repo.Find(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persiste el documento nuevo y recién después registra el insert
// en el historial. Si el insert falla no se escribe auditoría; si la
// auditoría falla, el documento ya quedó (secuencial, sin compensación).
func (s *Service) Create(ctx context.Context, actor auth.Claims, in CreateInput) (Pet, error) {
	if actor.UserID == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:        s.newID(),
		Species:   in.Species,
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		CreatedBy: stampFrom(actor),
		CreatedOn: s.now(),
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return Pet{}, err
	}

	if _, err := s.audit.Record(ctx, audit.OpInsert, Collection, p.ID, p.Document(), actor); err != nil {
		return Pet{}, err
	}

	return p, nil
}

// Update aplica el patch y registra el intento en el historial aunque el id
// no haya matcheado ningún documento (se audita toda mutación intentada).
// Un patch no vacío se sella con lastUpdatedBy/lastUpdated; uno vacío no.
func (s *Service) Update(ctx context.Context, actor auth.Claims, id string, patch Patch) (matched bool, err error) {
	if actor.UserID == "" {
		return false, ErrInvalidInput
	}

	if !patch.IsEmpty() {
		stamp := stampFrom(actor)
		at := s.now()
		patch.UpdatedBy = &stamp
		patch.UpdatedAt = &at
	}

	matched, err = s.repo.Update(ctx, id, patch)
	if err != nil {
		return false, err
	}

	if _, err := s.audit.Record(ctx, audit.OpUpdate, Collection, id, patch.Fields(), actor); err != nil {
		return false, err
	}

	return matched, nil
}

// Delete borra el documento si existe y registra el delete en el historial
// incondicionalmente. A nivel API la operación es idempotente: borrar un id
// inexistente también responde éxito.
func (s *Service) Delete(ctx context.Context, actor auth.Claims, id string) error {
	if actor.UserID == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_, err := s.audit.Record(ctx, audit.OpDelete, Collection, id, nil, actor)
	return err
}

// History devuelve el historial de edición de un pet.
func (s *Service) History(ctx context.Context, id string) ([]audit.EditRecord, error) {
	return s.audit.History(ctx, Collection, id)
}

func stampFrom(c auth.Claims) UserStamp {
	return UserStamp{
		UserID:   c.UserID,
		Email:    c.Email,
		FullName: c.FullName,
		Role:     c.Role,
	}
}
