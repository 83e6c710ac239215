package repository

import (
	"dootrec/internal/data/fixture"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Review    ReviewRepository
	Watchlist WatchlistRepository
}

func NewRepository(data *fixture.Dataset, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(data.Users, log),
		Review:    NewReviewRepository(data.Reviews, log),
		Watchlist: NewWatchlistRepository(data.Watchlist, log),
	}
}
