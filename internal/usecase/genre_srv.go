package usecase

import (
	"net/url"
	"strings"

	"dootrec/internal/dto/response"
)

// Genres is the fixed genre directory.
var Genres = []string{
	"Action", "Comedy", "Drama", "Sci-Fi", "Horror",
	"Thriller", "Romance", "Animation", "Documentary",
	"Fantasy", "Mystery", "Family", "Historical", "Musical", "Anime",
}

type GenreService interface {
	ListGenres() []response.GenreResponse
	// CanonicalGenre maps a case-insensitive name onto the directory
	// spelling, or returns name unchanged.
	CanonicalGenre(name string) string
}

type genreService struct{}

func NewGenreService() GenreService {
	return genreService{}
}

func (genreService) ListGenres() []response.GenreResponse {
	out := make([]response.GenreResponse, len(Genres))
	for i, g := range Genres {
		out[i] = response.GenreResponse{Name: g, Link: GenreLink(g)}
	}
	return out
}

func (genreService) CanonicalGenre(name string) string {
	for _, g := range Genres {
		if strings.EqualFold(g, name) {
			return g
		}
	}
	return name
}

// GenreLink points the explore page at a genre.
func GenreLink(genre string) string {
	return "/explore?genre=" + url.QueryEscape(strings.ToLower(genre))
}
