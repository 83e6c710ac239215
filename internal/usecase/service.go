package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"

	"dootrec/internal/autotag"
	"dootrec/internal/data/entity"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/response"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Feed      FeedService
	Explore   ExploreService
	Genre     GenreService
	Review    ReviewService
	User      UserService
	Watchlist WatchlistService
}

func NewService(repo *repository.Repository, tagger autotag.Tagger, log *zap.Logger) *Service {
	return &Service{
		Feed:      NewFeedService(repo, rand.Shuffle, log),
		Explore:   NewExploreService(repo, log),
		Genre:     NewGenreService(),
		Review:    NewReviewService(repo, tagger, log),
		User:      NewUserService(repo, log),
		Watchlist: NewWatchlistService(repo, log),
	}
}

// viewerID returns the viewer from ctx, falling back to the first user in
// the catalogue. Empty when neither exists.
func viewerID(ctx context.Context, users repository.UserRepository) (string, error) {
	if id, ok := utils.GetViewerIDFromContext(ctx); ok {
		return id, nil
	}

	first, err := users.First(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve viewer: %w", err)
	}
	if first == nil {
		return "", nil
	}
	return first.ID, nil
}

// authorLookup resolves review authors once per request.
type authorLookup struct {
	users repository.UserRepository
	cache map[string]*entity.User
}

func newAuthorLookup(users repository.UserRepository) *authorLookup {
	return &authorLookup{users: users, cache: make(map[string]*entity.User)}
}

// get returns nil for ids that do not resolve.
func (a *authorLookup) get(ctx context.Context, userID string) (*entity.User, error) {
	if u, ok := a.cache[userID]; ok {
		return u, nil
	}

	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find author %s: %w", userID, err)
	}
	a.cache[userID] = u
	return u, nil
}

func (a *authorLookup) toResponses(ctx context.Context, reviews []*entity.Review) ([]response.ReviewResponse, error) {
	out := make([]response.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		author, err := a.get(ctx, rv.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, response.ReviewToResponse(rv, author))
	}
	return out, nil
}
