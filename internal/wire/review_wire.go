package wire

import (
	"dootrec/internal/adaptor"
	"dootrec/internal/ratelimit"
	"dootrec/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	limiter *ratelimit.KeyedRateLimiter,
	log *zap.Logger,
) {
	r.Route("/api/reviews", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /api/reviews?q=&genre=&page=&per_page=
		r.Get("/", reviewHandler.ListReviews)

		// GET /api/reviews/{id}
		r.Get("/{id}", reviewHandler.GetReview)

		// POST /api/reviews - validated and logged, never stored
		r.Post("/", reviewHandler.SubmitReview)

		// ==================== RATE LIMITED ROUTES ====================
		// Each call goes out to the generative model
		r.With(middleware.RateLimit(limiter, log)).Post("/genres/suggest", reviewHandler.SuggestGenres)
	})
}
