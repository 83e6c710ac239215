package usecase

import (
	"context"
	"testing"

	"dootrec/internal/data/entity"
	"dootrec/internal/data/fixture"
	"dootrec/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_GetProfile(t *testing.T) {
	srv := NewUserService(newTestRepo(t), zap.NewNop())

	t.Run("me resolves to viewer", func(t *testing.T) {
		got, err := srv.GetProfile(viewerCtx("user1"), MeAlias)
		require.NoError(t, err)

		assert.Equal(t, "user1", got.User.ID)
		assert.Equal(t, "@user1", got.User.Handle)
		assert.True(t, got.IsOwnProfile)
		assert.False(t, got.ShowFollowButton)
		assert.Equal(t, []string{"review1", "review7"}, reviewIDs(got.Posts))
		// The first review is the viewer's own, so nothing is saved.
		assert.Empty(t, got.Saved)
		assert.Equal(t, "No saved content to display.", got.SavedEmptyMessage)
	})

	t.Run("other user", func(t *testing.T) {
		got, err := srv.GetProfile(viewerCtx("user1"), "user2")
		require.NoError(t, err)

		assert.Equal(t, "Marcus Reid", got.User.DisplayName)
		assert.Equal(t, "MA", got.User.Initials)
		assert.False(t, got.IsOwnProfile)
		assert.True(t, got.ShowFollowButton)
		assert.False(t, got.IsFollowing)
		assert.Equal(t, []string{"review2", "review4"}, reviewIDs(got.Posts))
		assert.Equal(t, []string{"review1"}, reviewIDs(got.Saved))
		assert.Empty(t, got.PostsEmptyMessage)
	})

	t.Run("own profile by id still shows follow button", func(t *testing.T) {
		got, err := srv.GetProfile(viewerCtx("user1"), "user1")
		require.NoError(t, err)
		assert.True(t, got.IsOwnProfile)
		assert.True(t, got.ShowFollowButton)
	})

	t.Run("unnamed user", func(t *testing.T) {
		got, err := srv.GetProfile(viewerCtx("user1"), "user5")
		require.NoError(t, err)
		assert.Equal(t, "Anonymous", got.User.DisplayName)
		assert.Equal(t, "U", got.User.Initials)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := srv.GetProfile(viewerCtx("user1"), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_GetProfile_NoPosts(t *testing.T) {
	data := &fixture.Dataset{Users: []*entity.User{{ID: "solo", Name: "Sam"}}}
	srv := NewUserService(repository.NewRepository(data, zap.NewNop()), zap.NewNop())

	got, err := srv.GetProfile(context.Background(), MeAlias)
	require.NoError(t, err)

	assert.Equal(t, "solo", got.User.ID)
	assert.Empty(t, got.Posts)
	assert.Equal(t, "Sam hasn't posted any reviews yet.", got.PostsEmptyMessage)
	assert.Equal(t, "No saved content to display.", got.SavedEmptyMessage)
}

func TestUserService_ListCommunity(t *testing.T) {
	srv := NewUserService(newTestRepo(t), zap.NewNop())

	members, err := srv.ListCommunity(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 5)

	for _, m := range members {
		assert.Equal(t, m.ID == "user2", m.IsFollowing, m.ID)
		assert.Equal(t, communityBio, m.Bio)
	}
	assert.Equal(t, "Anonymous", members[4].DisplayName)
}
