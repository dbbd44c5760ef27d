package pets

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults de paginación del listado.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 5

	// Cota superior para pageNumber/pageSize: mantiene el producto
	// (pageNumber-1)*pageSize dentro de int64 sin desbordar.
	maxPageValue = 1 << 30
)

// SortField es una de las columnas ordenables del listado.
type SortField string

const (
	SortBySpecies SortField = "species"
	SortByName    SortField = "name"
	SortByAge     SortField = "age"
	SortByGender  SortField = "gender"
	SortByCreated SortField = "createdOn"
)

// Sort es la clave de orden del listado.
// Para cualquier campo distinto de createdOn el desempate es siempre
// createdOn ascendente; newest/oldest ordenan solo por createdOn.
type Sort struct {
	Field SortField
	Desc  bool
}

// HasTiebreak reporta si el orden lleva createdOn asc como desempate.
func (s Sort) HasTiebreak() bool {
	return s.Field != SortByCreated
}

// sortTokens son los 10 valores reconocidos de sortBy.
// Cualquier otro valor (o ausencia) cae al default: name asc.
var sortTokens = map[string]Sort{
	"species":      {Field: SortBySpecies},
	"species_desc": {Field: SortBySpecies, Desc: true},
	"name":         {Field: SortByName},
	"name_desc":    {Field: SortByName, Desc: true},
	"age":          {Field: SortByAge},
	"age_desc":     {Field: SortByAge, Desc: true},
	"gender":       {Field: SortByGender},
	"gender_desc":  {Field: SortByGender, Desc: true},
	"newest":       {Field: SortByCreated, Desc: true},
	"oldest":       {Field: SortByCreated},
}

// Query es la especificación efímera del listado: filtro + orden + ventana.
// La proyección es fija (todos los campos de Pet), así que no se modela.
type Query struct {
	// Filtro. Campos vacíos / nil no filtran.
	Keywords string
	Species  string
	MinAge   *int
	MaxAge   *int

	Sort Sort

	// Ventana de página, ya resuelta: Skip = (pageNumber-1)*pageSize.
	Skip  int
	Limit int
}

// ParseQuery traduce los query params del listado a una Query determinística.
//
// Reglas:
//   - minAge/maxAge no numéricos se tratan como ausentes, no como error.
//   - sortBy fuera de la lista reconocida cae a name asc.
//   - pageNumber/pageSize inválidos o ausentes caen a 1 y 5; valores
//     enormes se acotan para que Skip nunca quede negativo.
func ParseQuery(params url.Values) Query {
	q := Query{
		Keywords: strings.TrimSpace(params.Get("keywords")),
		Species:  strings.TrimSpace(params.Get("species")),
		MinAge:   parseOptionalInt(params.Get("minAge")),
		MaxAge:   parseOptionalInt(params.Get("maxAge")),
		Sort:     Sort{Field: SortByName},
	}

	if s, ok := sortTokens[strings.TrimSpace(params.Get("sortBy"))]; ok {
		q.Sort = s
	}

	pageNumber := parseIntOrDefault(params.Get("pageNumber"), DefaultPageNumber)
	pageSize := parseIntOrDefault(params.Get("pageSize"), DefaultPageSize)

	q.Skip = (pageNumber - 1) * pageSize
	q.Limit = pageSize

	return q
}

// Matches evalúa el filtro contra un pet (semántica AND).
// keywords busca substring case-insensitive sobre name O species,
// campo por campo (mismo predicado que el ILIKE del adapter postgres).
func (q Query) Matches(p Pet) bool {
	if q.Keywords != "" {
		kw := strings.ToLower(q.Keywords)
		if !strings.Contains(strings.ToLower(p.Name), kw) &&
			!strings.Contains(strings.ToLower(p.Species), kw) {
			return false
		}
	}
	if q.Species != "" && p.Species != q.Species {
		return false
	}
	if q.MinAge != nil && p.Age < *q.MinAge {
		return false
	}
	if q.MaxAge != nil && p.Age > *q.MaxAge {
		return false
	}
	return true
}

// Less es el comparador del orden pedido, desempate incluido.
// Lo comparten el repo in-memory y los tests.
func (q Query) Less(a, b Pet) bool {
	var cmp int
	switch q.Sort.Field {
	case SortBySpecies:
		cmp = strings.Compare(a.Species, b.Species)
	case SortByName:
		cmp = strings.Compare(a.Name, b.Name)
	case SortByAge:
		cmp = compareInt(a.Age, b.Age)
	case SortByGender:
		cmp = strings.Compare(a.Gender, b.Gender)
	case SortByCreated:
		cmp = compareTime(a.CreatedOn, b.CreatedOn)
	}

	if cmp != 0 {
		if q.Sort.Desc {
			return cmp > 0
		}
		return cmp < 0
	}

	// Desempate createdOn asc (salvo newest/oldest, que ya ordenaron por createdOn).
	if q.Sort.HasTiebreak() {
		return a.CreatedOn.Before(b.CreatedOn)
	}
	return false
}

func parseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	if n > maxPageValue {
		return maxPageValue
	}
	return n
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
