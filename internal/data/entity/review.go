package entity

import (
	"slices"
	"time"
)

type Review struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	MovieID       string    `json:"movie_id"` // id in an external movie database
	MovieTitle    string    `json:"movie_title"`
	OTTLink       string    `json:"ott_link"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	ReviewText    string    `json:"review_text"`
	Genres        []string  `json:"genres"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}

// HasGenre reports whether genre is one of the review's tags, compared exactly.
func (r *Review) HasGenre(genre string) bool {
	return slices.Contains(r.Genres, genre)
}

// Clone returns a deep copy.
func (r *Review) Clone() *Review {
	c := *r
	c.Genres = slices.Clone(r.Genres)
	return &c
}
