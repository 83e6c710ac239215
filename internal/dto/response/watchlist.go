package response

import (
	"time"

	"dootrec/internal/data/entity"
)

const addedOnLayout = "1/2/2006"

type WatchlistItemResponse struct {
	ID           string          `json:"id"`
	ReviewID     string          `json:"review_id"`
	MovieTitle   string          `json:"movie_title"`
	ThumbnailURL string          `json:"thumbnail_url"`
	AddedAt      time.Time       `json:"added_at"`
	AddedOn      string          `json:"added_on"`
	Watched      bool            `json:"watched"`
	Link         string          `json:"link"`
	Review       *ReviewResponse `json:"review,omitempty"`
}

type WatchlistResponse struct {
	Items        []WatchlistItemResponse `json:"items"`
	EmptyMessage string                  `json:"empty_message,omitempty"`
}

// WatchlistItemToResponse joins an item with its review when it resolved.
func WatchlistItemToResponse(item *entity.WatchlistItem, review *ReviewResponse) WatchlistItemResponse {
	link := "#"
	if review != nil {
		link = "/review/" + review.ID
	}

	return WatchlistItemResponse{
		ID:           item.ID,
		ReviewID:     item.ReviewID,
		MovieTitle:   item.MovieTitle,
		ThumbnailURL: item.ThumbnailURL,
		AddedAt:      item.AddedAt,
		AddedOn:      item.AddedAt.Format(addedOnLayout),
		Watched:      item.Watched,
		Link:         link,
		Review:       review,
	}
}
