package adaptor

import (
	"net/http"

	"dootrec/internal/usecase"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

type FeedHandler struct {
	service usecase.FeedService
	log     *zap.Logger
}

func NewFeedHandler(service usecase.FeedService, log *zap.Logger) *FeedHandler {
	return &FeedHandler{
		service: service,
		log:     log.With(zap.String("handler", "feed")),
	}
}

// GetFeed handles GET /api/feed
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.GetFeed(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get feed", "")
		return
	}

	utils.ResponseSuccess(w, "Feed retrieved successfully", feed)
}
