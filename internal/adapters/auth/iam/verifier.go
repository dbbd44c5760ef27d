package iam

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-shelter-registry/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el IAM remoto.
// Se instancia desde main/router solo cuando hay AUTH_VERIFY_URL.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || !v.client.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	// El client ya normaliza los claims y rechaza respuestas sin user_id;
	// acá solo se agrega contexto al error.
	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("iam verify failed: %w", err)
	}
	return claims, nil
}
