package main

import (
	"net/http"
	"os"
	"time"

	"pet-shelter-registry/internal/adapters/auth/iam"
	"pet-shelter-registry/internal/platform/logger"
	"pet-shelter-registry/internal/ports/auth"
	"pet-shelter-registry/internal/router"
)

// @title        Pet Shelter Registry API
// @version      1.0
// @description  Registro de mascotas de refugio: listado con filtros, CRUD y auditoría de ediciones.
// @BasePath     /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier solo si hay IAM configurado; sin él corre en modo dev
	// (identidad por headers X-Debug-*).
	var verifier auth.AuthVerifier
	if baseURL := os.Getenv("AUTH_VERIFY_URL"); baseURL != "" {
		client := iam.NewClient(iam.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		verifier = iam.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
