package wire

import (
	"fmt"
	"net/http"
	"time"

	"dootrec/internal/adaptor"
	"dootrec/internal/autotag"
	"dootrec/internal/data/repository"
	"dootrec/internal/ratelimit"
	"dootrec/internal/usecase"
	"dootrec/internal/view"
	"dootrec/pkg/middleware"
	"dootrec/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Buckets for clients quiet for this long are forgotten.
const suggestLimiterIdle = 10 * time.Minute

// App holds the router and whatever must be released on shutdown.
type App struct {
	Router *chi.Mux

	suggestLimiter *ratelimit.KeyedRateLimiter
}

// Wiring builds services, handlers and routes over the given repositories.
func Wiring(repo *repository.Repository, tagger autotag.Tagger, config *utils.Config, logger *zap.Logger) (*App, error) {
	renderer, err := view.New(config.App.Name, logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	limiter := ratelimit.New(config.AutoTag.RatePerSecond, config.AutoTag.Burst, suggestLimiterIdle)

	service := usecase.NewService(repo, tagger, logger)
	handler := adaptor.NewHandler(service, renderer, limiter, logger)

	router := setupRouter(handler, limiter, config, logger)

	return &App{
		Router:         router,
		suggestLimiter: limiter,
	}, nil
}

// Close releases background resources.
func (a *App) Close() {
	a.suggestLimiter.Stop()
}

func setupRouter(
	handler *adaptor.Handler,
	limiter *ratelimit.KeyedRateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.Viewer(config.Viewer.ID, logger))

	// Apply routes
	wirePages(r, handler.Page)
	wireFeed(r, handler.Feed)
	wireReview(r, handler.Review, limiter, logger)
	wireGenre(r, handler.Genre)
	wireUser(r, handler.User)
	wireWatchlist(r, handler.Watchlist)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{"app": config.App.Name})
	})

	r.NotFound(handler.Page.NotFound)

	return r
}
