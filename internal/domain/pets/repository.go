package pets

import "context"

type Repository interface {
	Insert(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Find(ctx context.Context, q Query) ([]Pet, error)

	// Update aplica el patch al documento con ese id y reporta si algún
	// documento hizo match (aunque el patch sea vacío).
	Update(ctx context.Context, id string, patch Patch) (matched bool, err error)

	// Delete elimina el documento si existe y reporta si algo se borró.
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
