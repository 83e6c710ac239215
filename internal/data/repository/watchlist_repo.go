package repository

import (
	"context"

	"dootrec/internal/data/entity"

	"go.uber.org/zap"
)

type WatchlistRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]*entity.WatchlistItem, error)
}

type watchlistRepository struct {
	items []*entity.WatchlistItem
	log   *zap.Logger
}

func NewWatchlistRepository(items []*entity.WatchlistItem, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		items: items,
		log:   log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.WatchlistItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []*entity.WatchlistItem
	for _, it := range r.items {
		if it.UserID == userID {
			c := *it
			items = append(items, &c)
		}
	}

	r.log.Debug("Watchlist loaded", zap.String("user_id", userID), zap.Int("count", len(items)))
	return items, nil
}
