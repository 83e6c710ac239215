package request

// ExploreRequest filters the explore view.
type ExploreRequest struct {
	Query string `json:"q"`
	Genre string `json:"genre"`
	PaginatedRequest
}
