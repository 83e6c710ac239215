package repository

import (
	"context"

	"dootrec/internal/data/entity"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// FindAll returns every review in catalogue order.
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error)
}

type reviewRepository struct {
	reviews []*entity.Review
	byID    map[string]*entity.Review
	log     *zap.Logger
}

func NewReviewRepository(reviews []*entity.Review, log *zap.Logger) ReviewRepository {
	byID := make(map[string]*entity.Review, len(reviews))
	for _, rv := range reviews {
		if _, dup := byID[rv.ID]; dup {
			log.Warn("Duplicate review id in catalogue, keeping first", zap.String("review_id", rv.ID))
			continue
		}
		byID[rv.ID] = rv
	}

	return &reviewRepository{
		reviews: reviews,
		byID:    byID,
		log:     log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(r.reviews))
	for i, rv := range r.reviews {
		reviews[i] = rv.Clone()
	}
	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rv, ok := r.byID[id]
	if !ok {
		r.log.Debug("Review not in catalogue", zap.String("review_id", id))
		return nil, nil
	}
	return rv.Clone(), nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var reviews []*entity.Review
	for _, rv := range r.reviews {
		if rv.UserID == userID {
			reviews = append(reviews, rv.Clone())
		}
	}
	return reviews, nil
}
