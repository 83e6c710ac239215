package usecase

import (
	"context"
	"testing"

	"dootrec/internal/data/fixture"
	"dootrec/internal/data/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func noShuffle(int, func(i, j int)) {}

func reverseShuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestFeedService_GetFeed(t *testing.T) {
	srv := NewFeedService(newTestRepo(t), noShuffle, zap.NewNop())

	feed, err := srv.GetFeed(viewerCtx("user1"))
	require.NoError(t, err)

	got := make(map[string][]string)
	var titles []string
	for _, c := range feed.Carousels {
		titles = append(titles, c.Title)
		got[c.Title] = reviewIDs(c.Items)
	}

	assert.Equal(t, []string{
		"Trending Now",
		"Top Liked Reviews",
		"From People You Might Know",
		"Recommended For You",
		"Latest Action",
		"Latest Sci-Fi",
	}, titles)

	want := map[string][]string{
		"Trending Now":               {"review2", "review6", "review3", "review8", "review5", "review1", "review4", "review7", "review9"},
		"Top Liked Reviews":          {"review2", "review6", "review3", "review8", "review5"},
		"From People You Might Know": {"review2", "review3", "review4", "review5", "review6"},
		"Recommended For You":        {"review1", "review2", "review3", "review4", "review5", "review6", "review7", "review8", "review9"},
		"Latest Action":              {"review1", "review2", "review5"},
		"Latest Sci-Fi":              {"review8", "review4", "review1", "review5", "review9"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("carousels mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedService_RecommendedUsesShuffle(t *testing.T) {
	srv := NewFeedService(newTestRepo(t), reverseShuffle, zap.NewNop())

	feed, err := srv.GetFeed(viewerCtx("user1"))
	require.NoError(t, err)

	for _, c := range feed.Carousels {
		if c.Title != "Recommended For You" {
			continue
		}
		assert.Equal(t, "review9", c.Items[0].ID)
		assert.Equal(t, "review1", c.Items[len(c.Items)-1].ID)
		return
	}
	t.Fatal("recommended carousel missing")
}

func TestFeedService_FriendsExcludeViewer(t *testing.T) {
	srv := NewFeedService(newTestRepo(t), noShuffle, zap.NewNop())

	feed, err := srv.GetFeed(viewerCtx("user2"))
	require.NoError(t, err)

	for _, c := range feed.Carousels {
		if c.Title == "From People You Might Know" {
			assert.Equal(t, []string{"review1", "review3", "review5", "review6", "review7"}, reviewIDs(c.Items))
		}
	}
}

func TestFeedService_OmitsEmptyCarousels(t *testing.T) {
	data := fixture.Default()
	for _, rv := range data.Reviews {
		rv.Genres = []string{"Drama"}
	}
	srv := NewFeedService(repository.NewRepository(data, zap.NewNop()), noShuffle, zap.NewNop())

	feed, err := srv.GetFeed(context.Background())
	require.NoError(t, err)

	for _, c := range feed.Carousels {
		assert.NotContains(t, []string{"Latest Action", "Latest Sci-Fi"}, c.Title)
		assert.NotEmpty(t, c.Items)
	}
	assert.Len(t, feed.Carousels, 4)
}

func TestFeedService_EmptyCatalogue(t *testing.T) {
	srv := NewFeedService(repository.NewRepository(&fixture.Dataset{}, zap.NewNop()), noShuffle, zap.NewNop())

	feed, err := srv.GetFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed.Carousels)
	assert.NotNil(t, feed.Carousels)
}
