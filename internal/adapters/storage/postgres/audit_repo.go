package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pet-shelter-registry/internal/domain/audit"
	"pet-shelter-registry/internal/ports/auth"
)

// AuditRepo persiste el historial en una tabla append-only.
// change y auth van como JSONB; change queda NULL para deletes.
type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Append(ctx context.Context, rec audit.EditRecord) error {
	var change []byte
	if rec.Change != nil {
		b, err := json.Marshal(rec.Change)
		if err != nil {
			return fmt.Errorf("serializing change: %w", err)
		}
		change = b
	}

	authJSON, err := json.Marshal(rec.Auth)
	if err != nil {
		return fmt.Errorf("serializing auth: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO audit_edits (
			id, at, op, collection, target_id, change, auth
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rec.ID,
		rec.At,
		string(rec.Op),
		rec.Collection,
		rec.TargetID,
		change,
		authJSON,
	)
	if err != nil {
		return fmt.Errorf("appending edit record: %w", err)
	}
	return nil
}

func (r *AuditRepo) ListByTarget(ctx context.Context, collection, targetID string) ([]audit.EditRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, at, op, collection, target_id, change, auth
		FROM audit_edits
		WHERE collection = $1 AND target_id = $2
		ORDER BY at DESC
	`, collection, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]audit.EditRecord, 0)
	for rows.Next() {
		var (
			rec    audit.EditRecord
			op     string
			change []byte
			actor  []byte
		)

		if err := rows.Scan(
			&rec.ID,
			&rec.At,
			&op,
			&rec.Collection,
			&rec.TargetID,
			&change,
			&actor,
		); err != nil {
			return nil, err
		}

		rec.Op = audit.Op(op)

		if len(change) > 0 {
			if err := json.Unmarshal(change, &rec.Change); err != nil {
				return nil, fmt.Errorf("decoding change: %w", err)
			}
		}

		var claims auth.Claims
		if err := json.Unmarshal(actor, &claims); err != nil {
			return nil, fmt.Errorf("decoding auth: %w", err)
		}
		rec.Auth = claims

		out = append(out, rec)
	}

	return out, rows.Err()
}
