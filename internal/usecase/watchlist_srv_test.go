package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchlistService_GetWatchlist(t *testing.T) {
	srv := NewWatchlistService(newTestRepo(t), zap.NewNop())

	got, err := srv.GetWatchlist(viewerCtx("user1"))
	require.NoError(t, err)
	require.Len(t, got.Items, 3)
	assert.Empty(t, got.EmptyMessage)

	first := got.Items[0]
	assert.Equal(t, "watch1", first.ID)
	assert.Equal(t, "/review/review2", first.Link)
	assert.Equal(t, "5/9/2024", first.AddedOn)
	require.NotNil(t, first.Review)
	assert.Equal(t, "Marcus Reid", first.Review.AuthorName)

	assert.True(t, got.Items[1].Watched)

	unresolved := got.Items[2]
	assert.Equal(t, "Oppenheimer", unresolved.MovieTitle)
	assert.Equal(t, "#", unresolved.Link)
	assert.Nil(t, unresolved.Review)
}

func TestWatchlistService_OnlyViewerItems(t *testing.T) {
	srv := NewWatchlistService(newTestRepo(t), zap.NewNop())

	got, err := srv.GetWatchlist(viewerCtx("user2"))
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "watch4", got.Items[0].ID)
}

func TestWatchlistService_Empty(t *testing.T) {
	srv := NewWatchlistService(newTestRepo(t), zap.NewNop())

	got, err := srv.GetWatchlist(viewerCtx("user3"))
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.NotNil(t, got.Items)
	assert.Equal(t, "Your watchlist is empty. Add some movies and shows!", got.EmptyMessage)
}
