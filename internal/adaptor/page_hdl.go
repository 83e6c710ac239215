package adaptor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"
	"dootrec/internal/ratelimit"
	"dootrec/internal/usecase"
	"dootrec/internal/view"
	"dootrec/pkg/middleware"
	"dootrec/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Review form actions, carried by the submit button that was pressed.
const (
	actionAddGenre    = "add_genre"
	actionRemoveGenre = "remove_genre"
	actionSuggest     = "suggest"
	actionSubmit      = "submit"
)

const (
	maxFormBytes  = 10 << 20
	maxFormMemory = 1 << 20
)

// PageHandler serves the server-rendered site.
type PageHandler struct {
	service        *usecase.Service
	renderer       *view.Renderer
	suggestLimiter *ratelimit.KeyedRateLimiter
	log            *zap.Logger
}

func NewPageHandler(service *usecase.Service, renderer *view.Renderer, suggestLimiter *ratelimit.KeyedRateLimiter, log *zap.Logger) *PageHandler {
	return &PageHandler{
		service:        service,
		renderer:       renderer,
		suggestLimiter: suggestLimiter,
		log:            log.With(zap.String("handler", "page")),
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.Feed.GetFeed(r.Context())
	if err != nil {
		h.renderError(w, err, "render home")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageHome, view.Page{Content: feed})
}

// Explore handles GET /explore?q=&genre=&page=
func (h *PageHandler) Explore(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ExploreRequest{
		Query: query.Get("q"),
		Genre: query.Get("genre"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: request.MaxPerPage,
		},
	}

	result, err := h.service.Explore.Explore(r.Context(), req)
	if err != nil {
		h.renderError(w, err, "render explore")
		return
	}

	content := view.ExploreView{
		ExploreResponse: result,
		Genres:          h.service.Genre.ListGenres(),
	}
	if req.Page > 1 {
		content.PrevLink = exploreLink(req, req.Page-1)
	}
	if result.Results.Pagination.HasNext {
		content.NextLink = exploreLink(req, req.Page+1)
	}

	h.renderer.Render(w, http.StatusOK, view.PageExplore, view.Page{Title: result.Title, Content: content})
}

func exploreLink(req *request.ExploreRequest, page int) string {
	values := url.Values{}
	if req.Query != "" {
		values.Set("q", req.Query)
	}
	if req.Genre != "" {
		values.Set("genre", req.Genre)
	}
	values.Set("page", strconv.Itoa(page))
	return "/explore?" + values.Encode()
}

// Genres handles GET /genres
func (h *PageHandler) Genres(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageGenres, view.Page{
		Title:   "Genres",
		Content: h.service.Genre.ListGenres(),
	})
}

// Community handles GET /community
func (h *PageHandler) Community(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.User.ListCommunity(r.Context())
	if err != nil {
		h.renderError(w, err, "render community")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageCommunity, view.Page{Title: "Community", Content: members})
}

// Profile handles GET /profile/{userId}?tab=posts|saved
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.User.GetProfile(r.Context(), chi.URLParam(r, "userId"))
	if errors.Is(err, usecase.ErrNotFound) {
		h.renderNotFound(w, view.PageProfile, usecase.UserNotFoundMessage, "/community", "Browse the community")
		return
	}
	if err != nil {
		h.renderError(w, err, "render profile")
		return
	}

	tab := "posts"
	if r.URL.Query().Get("tab") == "saved" {
		tab = "saved"
	}

	h.renderer.Render(w, http.StatusOK, view.PageProfile, view.Page{
		Title:   profile.User.DisplayName,
		Content: view.ProfileView{ProfileResponse: profile, Tab: tab},
	})
}

// Review handles GET /review/{reviewId}
func (h *PageHandler) Review(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Review.GetReview(r.Context(), chi.URLParam(r, "reviewId"))
	if errors.Is(err, usecase.ErrNotFound) {
		h.renderNotFound(w, view.PageReview, usecase.ReviewNotFoundMessage, "/", "Back to home")
		return
	}
	if err != nil {
		h.renderError(w, err, "render review")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageReview, view.Page{Title: review.MovieTitle, Content: review})
}

// Watchlist handles GET /watchlist
func (h *PageHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	watchlist, err := h.service.Watchlist.GetWatchlist(r.Context())
	if err != nil {
		h.renderError(w, err, "render watchlist")
		return
	}

	h.renderer.Render(w, http.StatusOK, view.PageWatchlist, view.Page{Title: "Watchlist", Content: watchlist})
}

// NewReview handles GET /review/new
func (h *PageHandler) NewReview(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageReviewForm, view.Page{
		Title:   "New Review",
		Content: view.ReviewFormView{Form: request.SubmitReviewRequest{Genres: []string{}}},
	})
}

// ReviewFormAction handles POST /review/new. The form state travels with
// every request; the pressed button picks the action.
func (h *PageHandler) ReviewFormAction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	state, action, err := parseReviewForm(r)
	if err != nil {
		h.log.Warn("Failed to parse review form", zap.Error(err))
		h.renderer.Render(w, http.StatusBadRequest, view.PageReviewForm, view.Page{
			Title:   "New Review",
			Toast:   response.NewErrorToast("Invalid Form", "The form could not be read. Please try again."),
			Content: view.ReviewFormView{Form: request.SubmitReviewRequest{Genres: []string{}}},
		})
		return
	}

	status := http.StatusOK
	var toast *response.Toast

	switch action {
	case actionAddGenre:
		before := len(state.Form.Genres)
		state.Form.Genres = usecase.AddGenre(state.Form.Genres, state.GenreInput)
		if len(state.Form.Genres) > before {
			state.GenreInput = ""
		}

	case actionRemoveGenre:
		state.Form.Genres = usecase.RemoveGenre(state.Form.Genres, r.PostForm.Get(actionRemoveGenre))

	case actionSuggest:
		if key := middleware.ClientKey(r); !h.suggestLimiter.Allow(key) {
			h.log.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", r.URL.Path),
			)
			status = http.StatusTooManyRequests
			toast = usecase.RateLimitedToast
			break
		}

		result, err := h.service.Review.SuggestGenres(r.Context(), &request.SuggestGenresRequest{
			MovieTitle: state.Form.MovieTitle,
			OTTLink:    state.Form.OTTLink,
			Genres:     state.Form.Genres,
		})
		switch {
		case errors.Is(err, usecase.ErrValidation):
			toast = usecase.MissingInfoToast
		case err != nil:
			toast = usecase.SuggestFailedToast
		default:
			state.Form.Genres = result.Genres
			toast = result.Toast
		}

	case actionSubmit:
		result, err := h.service.Review.SubmitReview(r.Context(), &state.Form)
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			state.Errors = validationErr.Fields
			status = http.StatusUnprocessableEntity
		case err != nil:
			h.renderError(w, err, "submit review")
			return
		default:
			toast = result.Toast
		}

	default:
		h.log.Warn("Unknown review form action", zap.String("action", action))
		status = http.StatusBadRequest
	}

	h.renderer.Render(w, status, view.PageReviewForm, view.Page{Title: "New Review", Toast: toast, Content: state})
}

// parseReviewForm reads the form state from a urlencoded or multipart body.
// Only the chosen thumbnail's file name is kept.
func parseReviewForm(r *http.Request) (view.ReviewFormView, string, error) {
	var state view.ReviewFormView

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return state, "", err
		}
	} else if err := r.ParseForm(); err != nil {
		return state, "", err
	}

	form := r.PostForm
	state.Form = request.SubmitReviewRequest{
		MovieTitle:   form.Get("movie_title"),
		OTTLink:      form.Get("ott_link"),
		ThumbnailURL: form.Get("thumbnail_url"),
		ReviewText:   form.Get("review_text"),
		Genres:       append([]string{}, form["genres"]...),
	}
	state.GenreInput = form.Get("genre_input")

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["thumbnail_file"]; len(files) > 0 && files[0].Filename != "" {
			state.Form.ThumbnailFileName = files[0].Filename
		}
	}

	action := form.Get("action")
	if form.Has(actionRemoveGenre) {
		action = actionRemoveGenre
	}
	if action == "" {
		action = actionSubmit
	}

	return state, action, nil
}

// NotFound renders the not-found page, or a JSON 404 under /api.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		utils.ResponseNotFound(w, "Resource not found")
		return
	}
	h.renderNotFound(w, "", "Page not found.", "/", "Back to home")
}

func (h *PageHandler) renderNotFound(w http.ResponseWriter, active, message, backHref, backLabel string) {
	h.renderer.Render(w, http.StatusNotFound, view.PageNotFound, view.Page{
		Title:   "Not found",
		Active:  active,
		Content: view.NotFoundView{Message: message, BackHref: backHref, BackLabel: backLabel},
	})
}

func (h *PageHandler) renderError(w http.ResponseWriter, err error, operation string) {
	h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	h.renderer.Render(w, http.StatusInternalServerError, view.PageNotFound, view.Page{
		Title:   "Error",
		Content: view.NotFoundView{Message: "Something went wrong.", BackHref: "/", BackLabel: "Back to home"},
	})
}
