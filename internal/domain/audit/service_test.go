package audit

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pet-shelter-registry/internal/ports/auth"
)

type testRepo struct {
	records []EditRecord
}

func (r *testRepo) Append(ctx context.Context, rec EditRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *testRepo) ListByTarget(ctx context.Context, collection, targetID string) ([]EditRecord, error) {
	out := make([]EditRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Collection == collection && r.records[i].TargetID == targetID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func TestOp_IsValid(t *testing.T) {
	for _, op := range []Op{OpInsert, OpUpdate, OpDelete} {
		if !op.IsValid() {
			t.Errorf("expected %s to be valid", op)
		}
	}
	if Op("upsert").IsValid() {
		t.Error("expected upsert to be invalid")
	}
}

func TestEditRecord_Validate(t *testing.T) {
	base := EditRecord{
		Op:         OpInsert,
		Collection: "pets",
		TargetID:   "pet-1",
		Auth:       auth.Claims{UserID: "user-1"},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*EditRecord)
		want   error
	}{
		{"invalid op", func(r *EditRecord) { r.Op = "upsert" }, ErrInvalidOp},
		{"missing collection", func(r *EditRecord) { r.Collection = "" }, ErrMissingCollName},
		{"missing target", func(r *EditRecord) { r.TargetID = "" }, ErrMissingTarget},
		{"missing actor", func(r *EditRecord) { r.Auth = auth.Claims{} }, ErrMissingActor},
	}

	for _, tc := range cases {
		rec := base
		tc.mutate(&rec)
		if err := rec.Validate(); err != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestService_Record_FillsIDAndClock(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.newID = func() string { return "rec-1" }

	rec, err := svc.Record(context.Background(), OpInsert, "pets", "pet-1",
		map[string]any{"name": "Fido"}, auth.Claims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "rec-1" {
		t.Errorf("expected id=rec-1, got %s", rec.ID)
	}
	if !rec.At.Equal(fixed) {
		t.Errorf("expected at=%v, got %v", fixed, rec.At)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 appended record, got %d", len(repo.records))
	}
}

func TestEditRecord_JSONChangeVisibility(t *testing.T) {
	base := EditRecord{
		ID:         "rec-1",
		Op:         OpUpdate,
		Collection: "pets",
		TargetID:   "pet-1",
		Auth:       auth.Claims{UserID: "user-1"},
	}

	// Update con payload vacío: el campo queda visible como {}.
	base.Change = map[string]any{}
	b, err := json.Marshal(base)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"change":{}`) {
		t.Errorf("expected empty change rendered as {}, got %s", b)
	}

	// Delete: sin payload, el campo no aparece.
	base.Op = OpDelete
	base.Change = nil
	b, err = json.Marshal(base)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"change"`) {
		t.Errorf("expected no change field for delete, got %s", b)
	}
}

func TestService_Record_RejectsInvalid(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), OpInsert, "pets", "", nil, auth.Claims{UserID: "u"})
	if err != ErrMissingTarget {
		t.Fatalf("expected ErrMissingTarget, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatal("expected nothing appended")
	}
}
