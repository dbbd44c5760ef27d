// Package audit mantiene el historial inmutable de mutaciones aceptadas.
// Cada mutación exitosa (y cada intento update/delete, matchee o no)
// deja exactamente un EditRecord; los registros nunca se modifican.
package audit

import (
	"errors"
	"time"

	"pet-shelter-registry/internal/ports/auth"
)

// Op es el tipo de mutación registrada.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// IsValid reporta si op es una operación conocida.
func (o Op) IsValid() bool {
	switch o {
	case OpInsert, OpUpdate, OpDelete:
		return true
	}
	return false
}

// EditRecord es una entrada del historial: quién cambió qué y cuándo.
// Es un snapshot histórico; no se actualiza si el documento cambia después.
type EditRecord struct {
	ID         string         `json:"id"`
	At         time.Time      `json:"at"`
	Op         Op             `json:"op"`
	Collection string         `json:"collection"`
	TargetID   string         `json:"targetId"`
	// omitzero y no omitempty: un update con payload vacío rinde
	// "change": {} y se distingue del delete, que no trae el campo.
	Change map[string]any `json:"change,omitzero"` // nil para delete
	Auth   auth.Claims    `json:"auth"`
}

var (
	ErrInvalidOp       = errors.New("audit: invalid op")
	ErrMissingTarget   = errors.New("audit: target id required")
	ErrMissingActor    = errors.New("audit: actor user id required")
	ErrMissingCollName = errors.New("audit: collection required")
)

// Validate chequea los invariantes mínimos antes de persistir.
func (r EditRecord) Validate() error {
	if !r.Op.IsValid() {
		return ErrInvalidOp
	}
	if r.Collection == "" {
		return ErrMissingCollName
	}
	if r.TargetID == "" {
		return ErrMissingTarget
	}
	if r.Auth.UserID == "" {
		return ErrMissingActor
	}
	return nil
}
