package usecase

import (
	"context"
	"fmt"

	"dootrec/internal/data/repository"
	"dootrec/internal/dto/response"

	"go.uber.org/zap"
)

const watchlistEmptyMessage = "Your watchlist is empty. Add some movies and shows!"

type WatchlistService interface {
	GetWatchlist(ctx context.Context) (*response.WatchlistResponse, error)
}

type watchlistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo: repo,
		log:  log.With(zap.String("service", "watchlist")),
	}
}

// GetWatchlist returns the viewer's items. Items whose review id does not
// resolve are kept, without review details.
func (s *watchlistService) GetWatchlist(ctx context.Context) (*response.WatchlistResponse, error) {
	viewer, err := viewerID(ctx, s.repo.User)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Watchlist.FindByUserID(ctx, viewer)
	if err != nil {
		s.log.Error("Failed to load watchlist", zap.Error(err), zap.String("viewer_id", viewer))
		return nil, fmt.Errorf("load watchlist: %w", err)
	}

	authors := newAuthorLookup(s.repo.User)
	resp := &response.WatchlistResponse{Items: make([]response.WatchlistItemResponse, 0, len(items))}
	unresolved := 0

	for _, it := range items {
		review, err := s.repo.Review.FindByID(ctx, it.ReviewID)
		if err != nil {
			return nil, fmt.Errorf("find review %s: %w", it.ReviewID, err)
		}

		var details *response.ReviewResponse
		if review != nil {
			author, err := authors.get(ctx, review.UserID)
			if err != nil {
				return nil, err
			}
			r := response.ReviewToResponse(review, author)
			details = &r
		} else {
			unresolved++
		}

		resp.Items = append(resp.Items, response.WatchlistItemToResponse(it, details))
	}

	if len(resp.Items) == 0 {
		resp.EmptyMessage = watchlistEmptyMessage
	}

	if unresolved > 0 {
		s.log.Debug("Watchlist items without review details",
			zap.String("viewer_id", viewer),
			zap.Int("unresolved", unresolved),
		)
	}

	return resp, nil
}
