package wire

import (
	"dootrec/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/genres", genreHandler.ListGenres)
}
