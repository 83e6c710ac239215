package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreService_ListGenres(t *testing.T) {
	genres := NewGenreService().ListGenres()
	require.Len(t, genres, 15)

	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, "/explore?genre=action", genres[0].Link)
	assert.Equal(t, "/explore?genre=sci-fi", genres[3].Link)
	assert.Equal(t, "Anime", genres[14].Name)
}

func TestGenreService_CanonicalGenre(t *testing.T) {
	srv := NewGenreService()
	assert.Equal(t, "Sci-Fi", srv.CanonicalGenre("sci-fi"))
	assert.Equal(t, "Noir", srv.CanonicalGenre("Noir"))
}
