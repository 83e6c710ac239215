package response

type ExploreResponse struct {
	Title        string                             `json:"title"`
	Query        string                             `json:"query"`
	Genre        string                             `json:"genre,omitempty"`
	HasSearched  bool                               `json:"has_searched"`
	EmptyMessage string                             `json:"empty_message,omitempty"`
	Results      *PaginatedResponse[ReviewResponse] `json:"results"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
