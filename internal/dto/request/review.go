package request

// SubmitReviewRequest is the review creation form.
type SubmitReviewRequest struct {
	MovieTitle   string   `json:"movie_title" validate:"required"`
	OTTLink      string   `json:"ott_link" validate:"required,url"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	ReviewText   string   `json:"review_text" validate:"min=10"`
	Genres       []string `json:"genres" validate:"min=1"`

	// Name of a locally chosen image. The file itself is never uploaded.
	ThumbnailFileName string `json:"thumbnail_file_name,omitempty"`
}

// SuggestGenresRequest asks for model-suggested genres to merge into the
// genres already on the form.
type SuggestGenresRequest struct {
	MovieTitle string   `json:"movie_title"`
	OTTLink    string   `json:"ott_link"`
	Genres     []string `json:"genres"`
}
