package adaptor

import (
	"net/http"

	"dootrec/internal/usecase"
	"dootrec/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListCommunity(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users", "")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", members)
}

// GetUser handles GET /api/users/{id}. "me" is the viewer.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user", usecase.UserNotFoundMessage)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}
