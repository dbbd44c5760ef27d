package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"pet-shelter-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) error {
	createdBy, err := json.Marshal(p.CreatedBy)
	if err != nil {
		return fmt.Errorf("serializing created_by: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, species, name, age, gender,
			created_by, created_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		p.ID,
		p.Species,
		p.Name,
		p.Age,
		p.Gender,
		createdBy,
		p.CreatedOn,
	)
	if err != nil {
		return fmt.Errorf("inserting pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, species, name, age, gender,
			created_by, created_on,
			last_updated_by, last_updated
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

// sortColumns es la whitelist de columnas ordenables; el ORDER BY se arma
// solo desde acá, nunca desde input del cliente.
var sortColumns = map[pets.SortField]string{
	pets.SortBySpecies: "species",
	pets.SortByName:    "name",
	pets.SortByAge:     "age",
	pets.SortByGender:  "gender",
	pets.SortByCreated: "created_on",
}

func (r *PetsRepo) Find(ctx context.Context, q pets.Query) ([]pets.Pet, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, species, name, age, gender,
			created_by, created_on,
			last_updated_by, last_updated
		FROM pets
		WHERE 1=1
	`)

	args := []any{}
	argN := 1

	if q.Keywords != "" {
		sb.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR species ILIKE $%d)", argN, argN))
		args = append(args, "%"+q.Keywords+"%")
		argN++
	}
	if q.Species != "" {
		sb.WriteString(fmt.Sprintf(" AND species = $%d", argN))
		args = append(args, q.Species)
		argN++
	}
	if q.MinAge != nil {
		sb.WriteString(fmt.Sprintf(" AND age >= $%d", argN))
		args = append(args, *q.MinAge)
		argN++
	}
	if q.MaxAge != nil {
		sb.WriteString(fmt.Sprintf(" AND age <= $%d", argN))
		args = append(args, *q.MaxAge)
		argN++
	}

	col, ok := sortColumns[q.Sort.Field]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if q.Sort.Desc {
		dir = "DESC"
	}
	sb.WriteString(" ORDER BY " + col + " " + dir)
	if q.Sort.HasTiebreak() {
		sb.WriteString(", created_on ASC")
	}

	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argN, argN+1))
	args = append(args, q.Limit, q.Skip)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (bool, error) {
	// Patch vacío: no hay UPDATE que emitir, pero igual hay que reportar
	// si el id matchea (la respuesta depende de eso).
	if patch.IsEmpty() {
		var exists bool
		err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, id,
		).Scan(&exists)
		return exists, err
	}

	sets := []string{}
	args := []any{id}
	argN := 2

	addSet := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, v)
		argN++
	}

	if patch.Species != nil {
		addSet("species", *patch.Species)
	}
	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Age != nil {
		addSet("age", *patch.Age)
	}
	if patch.Gender != nil {
		addSet("gender", *patch.Gender)
	}
	if patch.UpdatedBy != nil {
		b, err := json.Marshal(*patch.UpdatedBy)
		if err != nil {
			return false, fmt.Errorf("serializing last_updated_by: %w", err)
		}
		addSet("last_updated_by", b)
	}
	if patch.UpdatedAt != nil {
		addSet("last_updated", *patch.UpdatedAt)
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE pets SET "+strings.Join(sets, ", ")+" WHERE id = $1",
		args...,
	)
	if err != nil {
		return false, fmt.Errorf("updating pet: %w", err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting pet: %w", err)
	}

	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p         pets.Pet
		createdBy []byte
		updatedBy []byte
		updatedAt sql.NullTime
	)

	if err := row.Scan(
		&p.ID,
		&p.Species,
		&p.Name,
		&p.Age,
		&p.Gender,
		&createdBy,
		&p.CreatedOn,
		&updatedBy,
		&updatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if err := json.Unmarshal(createdBy, &p.CreatedBy); err != nil {
		return pets.Pet{}, fmt.Errorf("decoding created_by: %w", err)
	}

	if len(updatedBy) > 0 {
		var stamp pets.UserStamp
		if err := json.Unmarshal(updatedBy, &stamp); err != nil {
			return pets.Pet{}, fmt.Errorf("decoding last_updated_by: %w", err)
		}
		p.LastUpdatedBy = &stamp
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		p.LastUpdated = &t
	}

	return p, nil
}
