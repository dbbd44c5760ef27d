package pets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// FieldError describe una violación de esquema en un campo puntual.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateRequest es el body de creación tal como llega del cliente.
// Punteros para distinguir "ausente" de "zero value" (age=0 es válido).
type CreateRequest struct {
	Species *string `json:"species"`
	Name    *string `json:"name"`
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
}

// UpdateRequest es el body de actualización: cualquier subconjunto.
type UpdateRequest struct {
	Species *string `json:"species"`
	Name    *string `json:"name"`
	Age     *int    `json:"age"`
	Gender  *string `json:"gender"`
}

// CreateInput es el payload de creación ya normalizado.
type CreateInput struct {
	Species string
	Name    string
	Age     int
	Gender  string
}

// ValidateID valida el formato del identificador (UUID).
// Corta antes de tocar storage; un id malformado es error del cliente.
func ValidateID(id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return FieldError{Field: "petId", Message: "must be a valid id"}
	}
	return nil
}

// ValidateCreate valida el body completo de creación. Todos los campos son
// obligatorios. Devuelve el payload normalizado o la lista de errores.
func ValidateCreate(req CreateRequest) (CreateInput, []FieldError) {
	var errs []FieldError

	species, errs := requireText("species", req.Species, errs)
	name, errs := requireText("name", req.Name, errs)
	gender, errs := requireGender(req.Gender, errs)

	var age int
	if req.Age == nil {
		errs = append(errs, FieldError{Field: "age", Message: "is required"})
	} else if err := checkAge(*req.Age); err != nil {
		errs = append(errs, *err)
	} else {
		age = *req.Age
	}

	if len(errs) > 0 {
		return CreateInput{}, errs
	}
	return CreateInput{Species: species, Name: name, Age: age, Gender: gender}, nil
}

// ValidateUpdate valida un subconjunto de campos y arma el Patch.
// Un body vacío es válido: patch vacío, sin cambios.
func ValidateUpdate(req UpdateRequest) (Patch, []FieldError) {
	var (
		patch Patch
		errs  []FieldError
	)

	if req.Species != nil {
		if s, ok := nonEmpty(*req.Species); !ok {
			errs = append(errs, FieldError{Field: "species", Message: "must not be empty"})
		} else {
			patch.Species = &s
		}
	}
	if req.Name != nil {
		if s, ok := nonEmpty(*req.Name); !ok {
			errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
		} else {
			patch.Name = &s
		}
	}
	if req.Age != nil {
		if err := checkAge(*req.Age); err != nil {
			errs = append(errs, *err)
		} else {
			patch.Age = req.Age
		}
	}
	if req.Gender != nil {
		if g, ok := singleChar(*req.Gender); !ok {
			errs = append(errs, FieldError{Field: "gender", Message: "must be a single character"})
		} else {
			patch.Gender = &g
		}
	}

	if len(errs) > 0 {
		return Patch{}, errs
	}
	return patch, nil
}

func requireText(field string, v *string, errs []FieldError) (string, []FieldError) {
	if v == nil {
		return "", append(errs, FieldError{Field: field, Message: "is required"})
	}
	s, ok := nonEmpty(*v)
	if !ok {
		return "", append(errs, FieldError{Field: field, Message: "must not be empty"})
	}
	return s, errs
}

func requireGender(v *string, errs []FieldError) (string, []FieldError) {
	if v == nil {
		return "", append(errs, FieldError{Field: "gender", Message: "is required"})
	}
	g, ok := singleChar(*v)
	if !ok {
		return "", append(errs, FieldError{Field: "gender", Message: "must be a single character"})
	}
	return g, errs
}

func checkAge(age int) *FieldError {
	if age < AgeMin || age > AgeMax {
		return &FieldError{
			Field:   "age",
			Message: fmt.Sprintf("must be between %d and %d", AgeMin, AgeMax),
		}
	}
	return nil
}

func nonEmpty(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func singleChar(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) == 1
}
