package response

import (
	"slices"
	"time"

	"dootrec/internal/data/entity"
)

const postedOnLayout = "January 2, 2006"

type ReviewResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Author        *UserResponse `json:"author,omitempty"`
	AuthorName    string        `json:"author_name"`
	AuthorInitial string        `json:"author_initial"`
	MovieID       string        `json:"movie_id"`
	MovieTitle    string        `json:"movie_title"`
	OTTLink       string        `json:"ott_link"`
	ThumbnailURL  string        `json:"thumbnail_url"`
	ReviewText    string        `json:"review_text"`
	Genres        []string      `json:"genres"`
	CreatedAt     time.Time     `json:"created_at"`
	PostedOn      string        `json:"posted_on"`
	LikesCount    int           `json:"likes_count"`
	CommentsCount int           `json:"comments_count"`
}

type ReviewDetailResponse struct {
	ReviewResponse
	IsAuthor bool `json:"is_author"`
}

// SubmitReviewResponse describes what would have been posted.
type SubmitReviewResponse struct {
	DraftID           string   `json:"draft_id"`
	MovieTitle        string   `json:"movie_title"`
	OTTLink           string   `json:"ott_link"`
	ReviewText        string   `json:"review_text"`
	Genres            []string `json:"genres"`
	FinalThumbnailURL string   `json:"final_thumbnail_url"`
	UploadedFile      *string  `json:"uploaded_file"`
	Toast             *Toast   `json:"toast"`
}

type SuggestGenresResponse struct {
	Added  []string `json:"added"`
	Genres []string `json:"genres"`
	Toast  *Toast   `json:"toast"`
}

// ReviewToResponse converts a review; author may be nil when the user id
// does not resolve.
func ReviewToResponse(review *entity.Review, author *entity.User) ReviewResponse {
	resp := ReviewResponse{
		ID:            review.ID,
		UserID:        review.UserID,
		AuthorName:    anonymousName,
		AuthorInitial: "U",
		MovieID:       review.MovieID,
		MovieTitle:    review.MovieTitle,
		OTTLink:       review.OTTLink,
		ThumbnailURL:  review.ThumbnailURL,
		ReviewText:    review.ReviewText,
		Genres:        slices.Clone(review.Genres),
		CreatedAt:     review.CreatedAt,
		PostedOn:      review.CreatedAt.Format(postedOnLayout),
		LikesCount:    review.LikesCount,
		CommentsCount: review.CommentsCount,
	}

	if author != nil {
		u := UserToResponse(author)
		resp.Author = &u
		resp.AuthorName = u.DisplayName
		resp.AuthorInitial = Initials(author.Name, 1)
	}

	return resp
}
