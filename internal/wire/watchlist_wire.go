package wire

import (
	"dootrec/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	// ==================== VIEWER ROUTES ====================
	// Items belong to the configured viewer
	r.Get("/api/watchlist", watchlistHandler.GetWatchlist)
}
