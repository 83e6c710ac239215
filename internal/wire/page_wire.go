package wire

import (
	"dootrec/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePages(r chi.Router, pageHandler *adaptor.PageHandler) {
	// ==================== HTML PAGES ====================
	r.Get("/", pageHandler.Home)
	r.Get("/explore", pageHandler.Explore)
	r.Get("/genres", pageHandler.Genres)
	r.Get("/community", pageHandler.Community)
	r.Get("/watchlist", pageHandler.Watchlist)

	// /profile/me is the viewer
	r.Get("/profile/{userId}", pageHandler.Profile)

	// ==================== REVIEW FORM ====================
	// Static segment wins over {reviewId}
	r.Get("/review/new", pageHandler.NewReview)
	r.Post("/review/new", pageHandler.ReviewFormAction)
	r.Get("/review/{reviewId}", pageHandler.Review)
}
