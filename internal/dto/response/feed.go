package response

type CarouselResponse struct {
	Title string           `json:"title"`
	Items []ReviewResponse `json:"items"`
}

type FeedResponse struct {
	Carousels []CarouselResponse `json:"carousels"`
}
