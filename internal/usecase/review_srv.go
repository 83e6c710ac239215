package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"dootrec/internal/autotag"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

// Inline messages for the review form, keyed by JSON field (and tag).
var reviewFormMessages = map[string]string{
	"movie_title":       "Movie title is required",
	"ott_link.required": "OTT link is required",
	"ott_link.url":      "Must be a valid URL",
	"thumbnail_url":     "Must be a valid URL for the thumbnail",
	"review_text":       "Review must be at least 10 characters",
	"genres":            "At least one genre is required",
}

// Notifications shown when genre suggestion cannot run or fails.
var (
	MissingInfoToast = response.NewErrorToast(
		"Missing Information",
		"Please enter a movie title and OTT link to suggest genres.",
	)
	SuggestFailedToast = response.NewErrorToast(
		"Error Suggesting Genres",
		"An unexpected error occurred. Please try again.",
	)
	RateLimitedToast = response.NewErrorToast(
		"Too Many Requests",
		"Too many requests, slow down",
	)
)

type ReviewService interface {
	GetReview(ctx context.Context, reviewID string) (*response.ReviewDetailResponse, error)
	// SubmitReview validates the form and logs the submission. Nothing is stored.
	SubmitReview(ctx context.Context, req *request.SubmitReviewRequest) (*response.SubmitReviewResponse, error)
	SuggestGenres(ctx context.Context, req *request.SuggestGenresRequest) (*response.SuggestGenresResponse, error)
}

type reviewService struct {
	repo   *repository.Repository
	tagger autotag.Tagger
	log    *zap.Logger
}

func NewReviewService(repo *repository.Repository, tagger autotag.Tagger, log *zap.Logger) ReviewService {
	if tagger == nil {
		tagger = autotag.Unavailable()
	}
	return &reviewService{
		repo:   repo,
		tagger: tagger,
		log:    log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewDetailResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("find review %s: %w", reviewID, err)
	}
	if review == nil {
		return nil, notFound("review", reviewID)
	}

	author, err := newAuthorLookup(s.repo.User).get(ctx, review.UserID)
	if err != nil {
		return nil, err
	}

	viewer, err := viewerID(ctx, s.repo.User)
	if err != nil {
		return nil, err
	}

	return &response.ReviewDetailResponse{
		ReviewResponse: response.ReviewToResponse(review, author),
		IsAuthor:       viewer != "" && review.UserID == viewer,
	}, nil
}

// ValidateReviewForm returns inline messages for every invalid field, or nil.
func ValidateReviewForm(req *request.SubmitReviewRequest) map[string]string {
	return utils.ValidateStructWith(req, reviewFormMessages)
}

func (s *reviewService) SubmitReview(ctx context.Context, req *request.SubmitReviewRequest) (*response.SubmitReviewResponse, error) {
	if errs := ValidateReviewForm(req); len(errs) > 0 {
		s.log.Warn("Review form validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	resp := &response.SubmitReviewResponse{
		DraftID:           utils.GenerateDraftID(),
		MovieTitle:        req.MovieTitle,
		OTTLink:           req.OTTLink,
		ReviewText:        req.ReviewText,
		Genres:            slices.Clone(req.Genres),
		FinalThumbnailURL: req.ThumbnailURL,
	}

	switch {
	case req.ThumbnailFileName != "":
		// The upload pipeline would produce the final URL from the file.
		name := req.ThumbnailFileName
		resp.FinalThumbnailURL = ""
		resp.UploadedFile = &name
		resp.Toast = response.NewToast(
			"Review Submitted (with file)",
			fmt.Sprintf("File '%s' would be uploaded. Review for %s has been posted.", name, req.MovieTitle),
		)
	case req.ThumbnailURL != "":
		resp.Toast = response.NewToast(
			"Review Submitted (with URL)",
			"Your review for "+req.MovieTitle+" has been posted using the provided URL.",
		)
	default:
		resp.Toast = response.NewToast(
			"Review Submitted (no thumbnail)",
			"Your review for "+req.MovieTitle+" has been posted.",
		)
	}

	viewer, _ := viewerID(ctx, s.repo.User)
	s.log.Info("Review submitted",
		zap.String("draft_id", resp.DraftID),
		zap.String("viewer_id", viewer),
		zap.String("movie_title", resp.MovieTitle),
		zap.String("ott_link", resp.OTTLink),
		zap.Strings("genres", resp.Genres),
		zap.String("final_thumbnail_url", resp.FinalThumbnailURL),
		zap.Stringp("uploaded_file", resp.UploadedFile),
	)

	return resp, nil
}

func (s *reviewService) SuggestGenres(ctx context.Context, req *request.SuggestGenresRequest) (*response.SuggestGenresResponse, error) {
	if req.MovieTitle == "" || req.OTTLink == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"genres": "Please enter a movie title and OTT link to suggest genres.",
		}}
	}

	out, err := s.tagger.Suggest(ctx, autotag.Input{Title: req.MovieTitle, OTTLink: req.OTTLink})
	if err != nil {
		level := s.log.Error
		if errors.Is(err, autotag.ErrUnavailable) {
			level = s.log.Warn
		}
		level("Error suggesting genres",
			zap.Error(err),
			zap.String("movie_title", req.MovieTitle),
		)
		return nil, fmt.Errorf("suggest genres: %w", err)
	}

	if out == nil {
		out = &autotag.Output{}
	}

	merged, added := MergeGenres(req.Genres, out.Genres)
	resp := &response.SuggestGenresResponse{Added: added, Genres: merged}

	// An empty reply is "nothing found"; a reply of known genres still counts as a suggestion.
	if len(out.Genres) > 0 {
		resp.Toast = response.NewToast("Genres Suggested", fmt.Sprintf("%d new genre(s) added.", len(added)))
	} else {
		resp.Toast = response.NewToast("No New Genres Found", "The AI couldn't suggest any new genres based on the input.")
	}

	s.log.Info("Genres suggested",
		zap.String("movie_title", req.MovieTitle),
		zap.Strings("suggested", out.Genres),
		zap.Strings("added", added),
	)

	return resp, nil
}

// AddGenre appends a trimmed custom genre unless it is blank or present.
func AddGenre(genres []string, genre string) []string {
	genre = strings.TrimSpace(genre)
	out := slices.Clone(genres)
	if genre == "" || slices.Contains(out, genre) {
		return out
	}
	return append(out, genre)
}

// RemoveGenre drops every exact match of genre.
func RemoveGenre(genres []string, genre string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g != genre {
			out = append(out, g)
		}
	}
	return out
}

// MergeGenres appends suggestions that are not already in current. It
// returns the merged list and the suggestions that were added.
func MergeGenres(current, suggested []string) (merged, added []string) {
	merged = slices.Clone(current)
	if merged == nil {
		merged = []string{}
	}
	added = []string{}
	for _, g := range suggested {
		if slices.Contains(merged, g) {
			continue
		}
		merged = append(merged, g)
		added = append(added, g)
	}
	return merged, added
}
