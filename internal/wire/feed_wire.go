package wire

import (
	"dootrec/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeed(r chi.Router, feedHandler *adaptor.FeedHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/feed", feedHandler.GetFeed)
}
