package pets

import "time"

// Límites de edad aceptados al crear/actualizar.
const (
	AgeMin = 0
	AgeMax = 1000
)

// UserStamp es el subconjunto de identidad que queda grabado en el registro
// (createdBy / lastUpdatedBy). No incluye permisos.
type UserStamp struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Pet representa un animal registrado en el refugio.
type Pet struct {
	ID      string
	Species string
	Name    string
	Age     int
	Gender  string // un solo carácter ("m", "f", ...)

	CreatedBy UserStamp
	CreatedOn time.Time

	// Nil hasta la primera actualización.
	LastUpdatedBy *UserStamp
	LastUpdated   *time.Time
}

// Patch describe una actualización parcial.
// Punteros para PATCH real: nil = no tocar.
type Patch struct {
	Species *string
	Name    *string
	Age     *int
	Gender  *string

	// Sellos de auditoría: el service los setea solo cuando el patch trae
	// al menos un campo del cliente.
	UpdatedBy *UserStamp
	UpdatedAt *time.Time
}

// IsEmpty reporta si el cliente no mandó ningún campo.
// Los sellos no cuentan: nunca se agregan a un patch vacío.
func (p Patch) IsEmpty() bool {
	return p.Species == nil && p.Name == nil && p.Age == nil && p.Gender == nil
}

// Fields devuelve los campos efectivamente aplicados, listos para el
// registro de auditoría. Patch vacío => mapa vacío (no nil).
func (p Patch) Fields() map[string]any {
	out := map[string]any{}
	if p.Species != nil {
		out["species"] = *p.Species
	}
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.Age != nil {
		out["age"] = *p.Age
	}
	if p.Gender != nil {
		out["gender"] = *p.Gender
	}
	if p.UpdatedBy != nil {
		out["lastUpdatedBy"] = *p.UpdatedBy
	}
	if p.UpdatedAt != nil {
		out["lastUpdated"] = *p.UpdatedAt
	}
	return out
}

// Document devuelve el documento completo como mapa, con las mismas keys
// que expone la API. Se usa para el registro de auditoría de un insert.
func (p Pet) Document() map[string]any {
	doc := map[string]any{
		"id":        p.ID,
		"species":   p.Species,
		"name":      p.Name,
		"age":       p.Age,
		"gender":    p.Gender,
		"createdBy": p.CreatedBy,
		"createdOn": p.CreatedOn,
	}
	if p.LastUpdatedBy != nil {
		doc["lastUpdatedBy"] = *p.LastUpdatedBy
	}
	if p.LastUpdated != nil {
		doc["lastUpdated"] = *p.LastUpdated
	}
	return doc
}
