package adaptor

import (
	"net/http"

	"dootrec/internal/usecase"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// ListGenres handles GET /api/genres
func (h *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Genres retrieved successfully", h.service.ListGenres())
}
