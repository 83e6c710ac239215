package entity

import "time"

type WatchlistItem struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ReviewID     string    `json:"review_id"` // may not resolve
	MovieTitle   string    `json:"movie_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	AddedAt      time.Time `json:"added_at"`
	Watched      bool      `json:"watched"`
}
