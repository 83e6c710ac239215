package usecase

import (
	"context"
	"fmt"
	"strings"

	"dootrec/internal/data/entity"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

const exploreAllTitle = "Explore All Content"

type ExploreService interface {
	Explore(ctx context.Context, req *request.ExploreRequest) (*response.ExploreResponse, error)
}

type exploreService struct {
	repo   *repository.Repository
	genres GenreService
	log    *zap.Logger
}

func NewExploreService(repo *repository.Repository, log *zap.Logger) ExploreService {
	return &exploreService{
		repo:   repo,
		genres: NewGenreService(),
		log:    log.With(zap.String("service", "explore")),
	}
}

// Explore lists reviews, optionally narrowed by a free-text query and a genre.
func (s *exploreService) Explore(ctx context.Context, req *request.ExploreRequest) (*response.ExploreResponse, error) {
	req.Normalize()

	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	authors := newAuthorLookup(s.repo.User)
	hasQuery := strings.TrimSpace(req.Query) != ""
	genre := strings.TrimSpace(req.Genre)

	matched := make([]*entity.Review, 0, len(reviews))
	for _, rv := range reviews {
		if genre != "" && !hasGenreFold(rv, genre) {
			continue
		}
		if hasQuery {
			author, err := authors.get(ctx, rv.UserID)
			if err != nil {
				return nil, err
			}
			if !MatchesQuery(rv, author, req.Query) {
				continue
			}
		}
		matched = append(matched, rv)
	}

	page, err := authors.toResponses(ctx, utils.Paginate(matched, req.Page, req.PerPage))
	if err != nil {
		return nil, err
	}

	resp := &response.ExploreResponse{
		Title:       exploreAllTitle,
		Query:       req.Query,
		HasSearched: hasQuery || genre != "",
		Results:     response.NewPaginatedResponse(page, req.Page, req.PerPage, int64(len(matched))),
	}

	displayGenre := ""
	if genre != "" {
		displayGenre = s.genres.CanonicalGenre(genre)
		resp.Genre = displayGenre
	}

	switch {
	case hasQuery:
		resp.Title = fmt.Sprintf("Search Results for \"%s\"", req.Query)
	case genre != "":
		resp.Title = fmt.Sprintf("Reviews tagged \"%s\"", displayGenre)
	}

	if len(matched) == 0 {
		switch {
		case hasQuery:
			resp.EmptyMessage = fmt.Sprintf("No results found for \"%s\". Try a different search!", req.Query)
		case genre != "":
			resp.EmptyMessage = fmt.Sprintf("No reviews tagged \"%s\" yet.", displayGenre)
		case len(reviews) == 0:
			resp.EmptyMessage = "No content available to explore yet."
		}
	}

	s.log.Debug("Explore",
		zap.String("query", req.Query),
		zap.String("genre", genre),
		zap.Int("matched", len(matched)),
		zap.Int("page", req.Page),
	)

	return resp, nil
}

// MatchesQuery reports whether query occurs, ignoring case, in the review's
// title, any genre, the author's name or the review text. A nil author never
// matches on name. An all-whitespace query matches everything.
func MatchesQuery(review *entity.Review, author *entity.User, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(review.MovieTitle), q) {
		return true
	}
	for _, g := range review.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	if author != nil && author.Name != "" && strings.Contains(strings.ToLower(author.Name), q) {
		return true
	}
	return strings.Contains(strings.ToLower(review.ReviewText), q)
}

func hasGenreFold(review *entity.Review, genre string) bool {
	for _, g := range review.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
