package wire

import (
	"dootrec/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)   // GET /api/users
		r.Get("/{id}", userHandler.GetUser) // GET /api/users/{id} ("me" is the viewer)
	})
}
