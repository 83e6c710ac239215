package usecase

import (
	"context"
	"testing"

	"dootrec/internal/data/entity"
	"dootrec/internal/data/fixture"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/request"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func allPage() request.PaginatedRequest {
	return request.PaginatedRequest{Page: 1, PerPage: request.MaxPerPage}
}

func TestExploreService_Explore(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		genre        string
		wantIDs      []string
		wantTitle    string
		wantSearched bool
		wantEmpty    string
	}{
		{
			name:      "no query lists everything",
			wantIDs:   []string{"review1", "review2", "review3", "review4", "review5", "review6", "review7", "review8", "review9"},
			wantTitle: "Explore All Content",
		},
		{
			name:      "whitespace query is no query",
			query:     "   ",
			wantIDs:   []string{"review1", "review2", "review3", "review4", "review5", "review6", "review7", "review8", "review9"},
			wantTitle: "Explore All Content",
		},
		{
			name:         "matches author name",
			query:        "ava",
			wantIDs:      []string{"review1", "review7"},
			wantTitle:    `Search Results for "ava"`,
			wantSearched: true,
		},
		{
			name:         "matches genre ignoring case",
			query:        "SCI-FI",
			wantIDs:      []string{"review1", "review4", "review5", "review8", "review9"},
			wantTitle:    `Search Results for "SCI-FI"`,
			wantSearched: true,
		},
		{
			name:         "matches title",
			query:        "dark knight",
			wantIDs:      []string{"review2"},
			wantTitle:    `Search Results for "dark knight"`,
			wantSearched: true,
		},
		{
			name:         "matches review text",
			query:        "bathhouse",
			wantIDs:      []string{"review3"},
			wantTitle:    `Search Results for "bathhouse"`,
			wantSearched: true,
		},
		{
			name:         "no match",
			query:        "zzz",
			wantIDs:      []string{},
			wantTitle:    `Search Results for "zzz"`,
			wantSearched: true,
			wantEmpty:    `No results found for "zzz". Try a different search!`,
		},
		{
			name:         "genre filter",
			genre:        "sci-fi",
			wantIDs:      []string{"review1", "review4", "review5", "review8", "review9"},
			wantTitle:    `Reviews tagged "Sci-Fi"`,
			wantSearched: true,
		},
		{
			name:         "genre filter with query",
			query:        "season",
			genre:        "comedy",
			wantIDs:      []string{"review7"},
			wantTitle:    `Search Results for "season"`,
			wantSearched: true,
		},
	}

	srv := NewExploreService(newTestRepo(t), zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := srv.Explore(context.Background(), &request.ExploreRequest{
				Query:            tt.query,
				Genre:            tt.genre,
				PaginatedRequest: allPage(),
			})
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantIDs, reviewIDs(resp.Results.Data)); diff != "" {
				t.Errorf("results mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantTitle, resp.Title)
			assert.Equal(t, tt.wantSearched, resp.HasSearched)
			assert.Equal(t, tt.wantEmpty, resp.EmptyMessage)
		})
	}
}

func TestExploreService_Paginates(t *testing.T) {
	srv := NewExploreService(newTestRepo(t), zap.NewNop())

	resp, err := srv.Explore(context.Background(), &request.ExploreRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"review3", "review4"}, reviewIDs(resp.Results.Data))
	assert.Equal(t, int64(9), resp.Results.Pagination.Total)
	assert.Equal(t, 5, resp.Results.Pagination.TotalPages)
	assert.True(t, resp.Results.Pagination.HasNext)
}

func TestExploreService_DefaultsPagination(t *testing.T) {
	srv := NewExploreService(newTestRepo(t), zap.NewNop())

	resp, err := srv.Explore(context.Background(), &request.ExploreRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Results.Pagination.Page)
	assert.Equal(t, request.DefaultPerPage, resp.Results.Pagination.PerPage)
	assert.Len(t, resp.Results.Data, 9)
}

func TestExploreService_EmptyCatalogue(t *testing.T) {
	srv := NewExploreService(repository.NewRepository(&fixture.Dataset{}, zap.NewNop()), zap.NewNop())

	resp, err := srv.Explore(context.Background(), &request.ExploreRequest{})
	require.NoError(t, err)

	assert.Empty(t, resp.Results.Data)
	assert.Equal(t, "No content available to explore yet.", resp.EmptyMessage)
	assert.False(t, resp.HasSearched)
}

func TestExploreService_UnresolvedAuthorIsAnonymous(t *testing.T) {
	srv := NewExploreService(newTestRepo(t), zap.NewNop())

	resp, err := srv.Explore(context.Background(), &request.ExploreRequest{
		Query:            "arrival",
		PaginatedRequest: allPage(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Results.Data, 1)

	got := resp.Results.Data[0]
	assert.Nil(t, got.Author)
	assert.Equal(t, "Anonymous", got.AuthorName)
	assert.Equal(t, "U", got.AuthorInitial)
}

func TestMatchesQuery(t *testing.T) {
	review := &entity.Review{
		MovieTitle: "Spirited Away",
		Genres:     []string{"Animation", "Fantasy"},
		ReviewText: "A bathhouse for spirits.",
	}
	author := &entity.User{ID: "u", Name: "Priya Nair"}

	tests := []struct {
		query  string
		author *entity.User
		want   bool
	}{
		{"spirited", author, true},
		{"ANIM", author, true},
		{"priya", author, true},
		{"priya", nil, false},
		{"BATHHOUSE", author, true},
		{"", author, true},
		{"  ", author, true},
		{" away", author, true},
		{"away ", author, false},
		{"horror", author, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesQuery(review, tt.author, tt.query), "query %q", tt.query)
	}
}
