package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"
	"dootrec/internal/usecase"
	"dootrec/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	explore usecase.ExploreService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, explore usecase.ExploreService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		explore: explore,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/reviews?q=&genre=&page=&per_page=
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ExploreRequest{
		Query: query.Get("q"),
		Genre: query.Get("genre"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
		},
	}

	result, err := h.explore.Explore(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews", "")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", result)
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.service.GetReview(r.Context(), reviewID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review", usecase.ReviewNotFoundMessage)
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// SubmitReview handles POST /api/reviews. Nothing is stored; the response
// describes what was posted.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit review", "")
		return
	}

	utils.ResponseCreated(w, result.Toast.Title, result)
}

// SuggestGenres handles POST /api/reviews/genres/suggest
func (h *ReviewHandler) SuggestGenres(w http.ResponseWriter, r *http.Request) {
	var req request.SuggestGenresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SuggestGenres(r.Context(), &req)
	if err != nil {
		// The form keeps its genres; only a notification is shown.
		genres, _ := usecase.MergeGenres(req.Genres, nil)
		unchanged := &response.SuggestGenresResponse{Added: []string{}, Genres: genres}

		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			unchanged.Toast = usecase.MissingInfoToast
			utils.ResponseJSON(w, http.StatusBadRequest, false, unchanged.Toast.Title, unchanged, validationErr.Fields)
			return
		}

		h.log.Error("Failed to suggest genres", zap.Error(err))
		unchanged.Toast = usecase.SuggestFailedToast
		utils.ResponseInternalErrorWithData(w, unchanged.Toast.Title, unchanged)
		return
	}

	utils.ResponseSuccess(w, result.Toast.Title, result)
}
