package memory

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"pet-shelter-registry/internal/domain/audit"
	"pet-shelter-registry/internal/domain/pets"
	"pet-shelter-registry/internal/ports/auth"
)

func newRecord(id, collection, targetID string) audit.EditRecord {
	return audit.EditRecord{
		ID:         id,
		At:         time.Now(),
		Op:         audit.OpUpdate,
		Collection: collection,
		TargetID:   targetID,
		Auth:       auth.Claims{UserID: "user-1"},
	}
}

func seedRepo(t *testing.T) pets.Repository {
	t.Helper()

	repo := NewPetRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seed := []pets.Pet{
		{ID: "p1", Species: "dog", Name: "Fido", Age: 3, Gender: "m"},
		{ID: "p2", Species: "cat", Name: "Ada", Age: 7, Gender: "f"},
		{ID: "p3", Species: "dog", Name: "Bobby", Age: 1, Gender: "m"},
		{ID: "p4", Species: "bird", Name: "Kiwi", Age: 2, Gender: "f"},
		{ID: "p5", Species: "cat", Name: "Milo", Age: 5, Gender: "m"},
		{ID: "p6", Species: "dog", Name: "Rex", Age: 9, Gender: "m"},
		{ID: "p7", Species: "cat", Name: "Luna", Age: 4, Gender: "f"},
	}
	for i := range seed {
		seed[i].CreatedOn = base.Add(time.Duration(i) * time.Hour)
		if err := repo.Insert(context.Background(), seed[i]); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	return repo
}

func find(t *testing.T, repo pets.Repository, params url.Values) []pets.Pet {
	t.Helper()
	out, err := repo.Find(context.Background(), pets.ParseQuery(params))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	return out
}

func TestFind_AgeRangeFilter(t *testing.T) {
	repo := seedRepo(t)

	out := find(t, repo, url.Values{"minAge": {"2"}, "maxAge": {"5"}, "pageSize": {"50"}})
	if len(out) == 0 {
		t.Fatal("expected results")
	}
	for _, p := range out {
		if p.Age < 2 || p.Age > 5 {
			t.Errorf("age %d out of [2,5]", p.Age)
		}
	}

	// Sin cota inferior queda solo la superior.
	out = find(t, repo, url.Values{"maxAge": {"3"}, "pageSize": {"50"}})
	for _, p := range out {
		if p.Age > 3 {
			t.Errorf("age %d above max", p.Age)
		}
	}
}

func TestFind_SpeciesFilter(t *testing.T) {
	repo := seedRepo(t)

	out := find(t, repo, url.Values{"species": {"cat"}, "pageSize": {"50"}})
	if len(out) != 3 {
		t.Fatalf("expected 3 cats, got %d", len(out))
	}
	for _, p := range out {
		if p.Species != "cat" {
			t.Errorf("unexpected species %q", p.Species)
		}
	}
}

func TestFind_SortOrders(t *testing.T) {
	repo := seedRepo(t)

	cases := []struct {
		token string
		less  func(a, b pets.Pet) bool
	}{
		{"name", func(a, b pets.Pet) bool { return a.Name <= b.Name }},
		{"name_desc", func(a, b pets.Pet) bool { return a.Name >= b.Name }},
		{"age", func(a, b pets.Pet) bool { return a.Age <= b.Age }},
		{"age_desc", func(a, b pets.Pet) bool { return a.Age >= b.Age }},
		{"species", func(a, b pets.Pet) bool { return a.Species <= b.Species }},
		{"species_desc", func(a, b pets.Pet) bool { return a.Species >= b.Species }},
		{"gender", func(a, b pets.Pet) bool { return a.Gender <= b.Gender }},
		{"gender_desc", func(a, b pets.Pet) bool { return a.Gender >= b.Gender }},
		{"newest", func(a, b pets.Pet) bool { return !a.CreatedOn.Before(b.CreatedOn) }},
		{"oldest", func(a, b pets.Pet) bool { return !a.CreatedOn.After(b.CreatedOn) }},
	}

	for _, tc := range cases {
		out := find(t, repo, url.Values{"sortBy": {tc.token}, "pageSize": {"50"}})
		if len(out) != 7 {
			t.Fatalf("sortBy=%s: expected 7 results, got %d", tc.token, len(out))
		}
		for i := 1; i < len(out); i++ {
			if !tc.less(out[i-1], out[i]) {
				t.Errorf("sortBy=%s: out of order at %d: %s then %s",
					tc.token, i, out[i-1].Name, out[i].Name)
			}
		}
	}
}

func TestFind_SortTiebreakByCreatedOn(t *testing.T) {
	repo := NewPetRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Mismo nombre, distinta fecha de alta.
	for i, id := range []string{"a", "b", "c"} {
		err := repo.Insert(context.Background(), pets.Pet{
			ID: id, Species: "dog", Name: "Twin", Age: i, Gender: "m",
			CreatedOn: base.Add(time.Duration(3-i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	out := find(t, repo, url.Values{"sortBy": {"name"}, "pageSize": {"50"}})
	for i := 1; i < len(out); i++ {
		if out[i-1].CreatedOn.After(out[i].CreatedOn) {
			t.Errorf("expected createdOn asc tiebreak, got %v then %v",
				out[i-1].CreatedOn, out[i].CreatedOn)
		}
	}
}

func TestFind_Pagination(t *testing.T) {
	repo := seedRepo(t)

	// Defaults: página 1 de 5.
	out := find(t, repo, url.Values{})
	if len(out) != 5 {
		t.Fatalf("expected default page size 5, got %d", len(out))
	}

	// Página 2 de 5: quedan 2.
	out = find(t, repo, url.Values{"pageNumber": {"2"}})
	if len(out) != 2 {
		t.Fatalf("expected 2 leftovers on page 2, got %d", len(out))
	}

	// Ventana más allá del final: vacío, no error.
	out = find(t, repo, url.Values{"pageNumber": {"9"}})
	if len(out) != 0 {
		t.Fatalf("expected empty page, got %d", len(out))
	}

	// Valores enormes: página vacía, nunca un panic por índice negativo.
	out = find(t, repo, url.Values{
		"pageNumber": {"4000000000"},
		"pageSize":   {"4000000000"},
	})
	if len(out) != 0 {
		t.Fatalf("expected empty page for huge window, got %d", len(out))
	}

	// Sin solapamiento entre páginas consecutivas.
	page1 := find(t, repo, url.Values{"sortBy": {"age"}, "pageSize": {"3"}, "pageNumber": {"1"}})
	page2 := find(t, repo, url.Values{"sortBy": {"age"}, "pageSize": {"3"}, "pageNumber": {"2"}})
	seen := map[string]bool{}
	for _, p := range page1 {
		seen[p.ID] = true
	}
	for _, p := range page2 {
		if seen[p.ID] {
			t.Errorf("pet %s appears on both pages", p.ID)
		}
	}
}

func TestUpdate_MissingIDReportsNoMatch(t *testing.T) {
	repo := NewPetRepo()

	matched, err := repo.Update(context.Background(), "missing", pets.Patch{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatal("expected no match")
	}
}

func TestDelete_Reports(t *testing.T) {
	repo := seedRepo(t)

	deleted, err := repo.Delete(context.Background(), "p1")
	if err != nil || !deleted {
		t.Fatalf("expected delete of p1, got deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), "p1")
	if err != nil || deleted {
		t.Fatalf("expected no-op second delete, got deleted=%v err=%v", deleted, err)
	}
}

func TestAuditRepo_AppendAndListByTarget(t *testing.T) {
	repo := NewAuditRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, newRecord(fmt.Sprintf("r%d", i), "pets", "pet-1"))
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.Append(ctx, newRecord("other", "pets", "pet-2")); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := repo.ListByTarget(ctx, "pets", "pet-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	// Más reciente primero.
	if out[0].ID != "r2" || out[2].ID != "r0" {
		t.Errorf("expected newest-first order, got %s..%s", out[0].ID, out[2].ID)
	}
}
