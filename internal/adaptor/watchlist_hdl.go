package adaptor

import (
	"net/http"

	"dootrec/internal/usecase"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// GetWatchlist handles GET /api/watchlist
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	watchlist, err := h.service.GetWatchlist(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get watchlist", "")
		return
	}

	utils.ResponseSuccess(w, "Watchlist retrieved successfully", watchlist)
}
