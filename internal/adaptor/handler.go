package adaptor

import (
	"errors"
	"net/http"

	"dootrec/internal/ratelimit"
	"dootrec/internal/usecase"
	"dootrec/internal/view"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Feed      *FeedHandler
	Review    *ReviewHandler
	Genre     *GenreHandler
	User      *UserHandler
	Watchlist *WatchlistHandler
	Page      *PageHandler
}

// NewHandler builds every handler. suggestLimiter is shared with the JSON
// suggest route so both paths draw from the same client buckets.
func NewHandler(service *usecase.Service, renderer *view.Renderer, suggestLimiter *ratelimit.KeyedRateLimiter, log *zap.Logger) *Handler {
	return &Handler{
		Feed:      NewFeedHandler(service.Feed, log),
		Review:    NewReviewHandler(service.Review, service.Explore, log),
		Genre:     NewGenreHandler(service.Genre, log),
		User:      NewUserHandler(service.User, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Page:      NewPageHandler(service, renderer, suggestLimiter, log),
	}
}

// handleServiceError maps service errors onto the JSON envelope. Expected
// failures log at warn, everything else at error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, notFoundMessage string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundMessage)

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
