package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-shelter-registry/internal/middleware"
	"pet-shelter-registry/internal/ports/auth"
)

// RegisterRoutes monta el recurso bajo /pets.
// Los gates (auth / permiso) se componen por ruta, antes del handler;
// adentro de los handlers no hay chequeos de permisos.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.With(middleware.RequireAuth).Get("/list", listPetsHandler(svc))
		pr.With(middleware.RequirePermission(auth.PermInsertPet)).Put("/new", createPetHandler(svc))

		pr.With(middleware.RequireAuth).Get("/{petID}", getPetHandler(svc))
		pr.With(middleware.RequirePermission(auth.PermUpdatePet)).Put("/{petID}", updatePetHandler(svc))
		pr.With(middleware.RequirePermission(auth.PermDeletePet)).Delete("/{petID}", deletePetHandler(svc))

		pr.With(middleware.RequireAuth).Get("/{petID}/history", petHistoryHandler(svc))
	})
}

type petResponse struct {
	ID            string     `json:"id"`
	Species       string     `json:"species"`
	Name          string     `json:"name"`
	Age           int        `json:"age"`
	Gender        string     `json:"gender"`
	CreatedBy     UserStamp  `json:"createdBy"`
	CreatedOn     time.Time  `json:"createdOn"`
	LastUpdatedBy *UserStamp `json:"lastUpdatedBy,omitempty"`
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
}

type mutationResponse struct {
	Message string `json:"message"`
	PetID   string `json:"petId"`
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// listPetsHandler godoc
// @Summary  Lista pets con filtro, orden y paginación
// @Param    keywords   query string false "búsqueda por texto (name/species)"
// @Param    species    query string false "igualdad exacta"
// @Param    minAge     query int    false "cota inferior inclusiva"
// @Param    maxAge     query int    false "cota superior inclusiva"
// @Param    sortBy     query string false "species|name|age|gender (con _desc) | newest | oldest"
// @Param    pageNumber query int    false "default 1"
// @Param    pageSize   query int    false "default 5"
// @Success  200 {array} petResponse
// @Router   /pets/list [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := ParseQuery(r.URL.Query())

		items, err := svc.List(r.Context(), q)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary  Devuelve un pet por id
// @Param    petID path string true "id del pet"
// @Success  200 {object} petResponse
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if err := ValidateID(petID); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary  Registra un pet nuevo
// @Param    body body CreateRequest true "species, name, age y gender, todos obligatorios"
// @Success  201 {object} mutationResponse
// @Failure  400 {object} errorResponse
// @Router   /pets/new [put]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		in, fieldErrs := ValidateCreate(req)
		if len(fieldErrs) > 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload", Fields: fieldErrs})
			return
		}

		p, err := svc.Create(r.Context(), claims, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		writeJSON(w, http.StatusCreated, mutationResponse{Message: "pet created", PetID: p.ID})
	}
}

// updatePetHandler godoc
// @Summary  Actualiza un subconjunto de campos
// @Param    petID path string true "id del pet"
// @Param    body body UpdateRequest true "subconjunto de species/name/age/gender"
// @Success  200 {object} mutationResponse
// @Failure  404 {object} errorResponse
// @Router   /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}

		petID := chi.URLParam(r, "petID")
		if err := ValidateID(petID); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		patch, fieldErrs := ValidateUpdate(req)
		if len(fieldErrs) > 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload", Fields: fieldErrs})
			return
		}

		matched, err := svc.Update(r.Context(), claims, petID, patch)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		// El intento ya quedó auditado aunque no haya matcheado.
		if !matched {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "pet not found"})
			return
		}

		writeJSON(w, http.StatusOK, mutationResponse{Message: "pet updated", PetID: petID})
	}
}

// deletePetHandler godoc
// @Summary  Elimina un pet (idempotente a nivel API)
// @Param    petID path string true "id del pet"
// @Success  200 {object} mutationResponse
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}

		petID := chi.URLParam(r, "petID")
		if err := ValidateID(petID); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		if err := svc.Delete(r.Context(), claims, petID); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		// Éxito aunque el id no haya existido.
		writeJSON(w, http.StatusOK, mutationResponse{Message: "pet deleted", PetID: petID})
	}
}

// petHistoryHandler godoc
// @Summary  Historial de edición de un pet, más reciente primero
// @Param    petID path string true "id del pet"
// @Router   /pets/{petID}/history [get]
func petHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if err := ValidateID(petID); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		records, err := svc.History(r.Context(), petID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:            p.ID,
		Species:       p.Species,
		Name:          p.Name,
		Age:           p.Age,
		Gender:        p.Gender,
		CreatedBy:     p.CreatedBy,
		CreatedOn:     p.CreatedOn,
		LastUpdatedBy: p.LastUpdatedBy,
		LastUpdated:   p.LastUpdated,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
