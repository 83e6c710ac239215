package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"dootrec/internal/data/entity"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/response"

	"go.uber.org/zap"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

const (
	topLikedLimit    = 5
	friendsLimit     = 5
	recommendedLimit = 10
	latestLimit      = 5
)

type FeedService interface {
	GetFeed(ctx context.Context) (*response.FeedResponse, error)
}

type feedService struct {
	repo    *repository.Repository
	shuffle ShuffleFunc
	log     *zap.Logger
}

func NewFeedService(repo *repository.Repository, shuffle ShuffleFunc, log *zap.Logger) FeedService {
	return &feedService{
		repo:    repo,
		shuffle: shuffle,
		log:     log.With(zap.String("service", "feed")),
	}
}

// GetFeed builds the home page carousels. Empty carousels are left out.
func (s *feedService) GetFeed(ctx context.Context) (*response.FeedResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	viewer, err := viewerID(ctx, s.repo.User)
	if err != nil {
		return nil, err
	}

	byLikes := sortedByLikes(reviews)

	sections := []struct {
		title string
		items []*entity.Review
	}{
		{"Trending Now", byLikes},
		{"Top Liked Reviews", head(byLikes, topLikedLimit)},
		{"From People You Might Know", head(notBy(reviews, viewer), friendsLimit)},
		{"Recommended For You", head(s.shuffled(reviews), recommendedLimit)},
		{"Latest Action", head(latestInGenre(reviews, "Action"), latestLimit)},
		{"Latest Sci-Fi", head(latestInGenre(reviews, "Sci-Fi"), latestLimit)},
	}

	authors := newAuthorLookup(s.repo.User)
	feed := &response.FeedResponse{Carousels: []response.CarouselResponse{}}
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		items, err := authors.toResponses(ctx, sec.items)
		if err != nil {
			s.log.Error("Failed to build carousel", zap.String("carousel", sec.title), zap.Error(err))
			return nil, fmt.Errorf("build carousel %q: %w", sec.title, err)
		}
		feed.Carousels = append(feed.Carousels, response.CarouselResponse{Title: sec.title, Items: items})
	}

	s.log.Debug("Feed built",
		zap.String("viewer_id", viewer),
		zap.Int("reviews", len(reviews)),
		zap.Int("carousels", len(feed.Carousels)),
	)

	return feed, nil
}

func (s *feedService) shuffled(reviews []*entity.Review) []*entity.Review {
	out := slices.Clone(reviews)
	if s.shuffle != nil {
		s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	return out
}

// sortedByLikes orders by likes, most liked first; ties keep catalogue order.
func sortedByLikes(reviews []*entity.Review) []*entity.Review {
	out := slices.Clone(reviews)
	slices.SortStableFunc(out, func(a, b *entity.Review) int {
		return cmp.Compare(b.LikesCount, a.LikesCount)
	})
	return out
}

func notBy(reviews []*entity.Review, userID string) []*entity.Review {
	var out []*entity.Review
	for _, rv := range reviews {
		if rv.UserID != userID {
			out = append(out, rv)
		}
	}
	return out
}

// latestInGenre keeps reviews tagged exactly genre, newest first.
func latestInGenre(reviews []*entity.Review, genre string) []*entity.Review {
	var out []*entity.Review
	for _, rv := range reviews {
		if rv.HasGenre(genre) {
			out = append(out, rv)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
