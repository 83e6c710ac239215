package usecase

import (
	"context"
	"fmt"

	"dootrec/internal/data/entity"
	"dootrec/internal/data/repository"
	"dootrec/internal/dto/response"

	"go.uber.org/zap"
)

// MeAlias resolves to the viewer on profile routes.
const MeAlias = "me"

const communityBio = "User bio placeholder. Passionate about indie films and sci-fi series."

// followedUserID stands in for a real follow graph.
const followedUserID = "user2"

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	ListCommunity(ctx context.Context) ([]response.CommunityMemberResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	isMe := userID == MeAlias
	if isMe {
		viewer, err := viewerID(ctx, s.repo.User)
		if err != nil {
			return nil, err
		}
		userID = viewer
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	if user == nil {
		return nil, notFound("user", userID)
	}

	posts, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user reviews", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("load reviews for %s: %w", userID, err)
	}

	all, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	// Placeholder for saved content: the first review, unless it is the user's own.
	var saved []*entity.Review
	if len(all) > 0 && all[0].UserID != userID {
		saved = all[:1]
	}

	authors := newAuthorLookup(s.repo.User)
	postResponses, err := authors.toResponses(ctx, posts)
	if err != nil {
		return nil, err
	}
	savedResponses, err := authors.toResponses(ctx, saved)
	if err != nil {
		return nil, err
	}

	viewer, err := viewerID(ctx, s.repo.User)
	if err != nil {
		return nil, err
	}

	resp := &response.ProfileResponse{
		User:             response.UserToResponse(user),
		IsOwnProfile:     userID == viewer,
		ShowFollowButton: !isMe,
		IsFollowing:      false,
		Posts:            postResponses,
		Saved:            savedResponses,
	}
	if len(postResponses) == 0 {
		resp.PostsEmptyMessage = fmt.Sprintf("%s hasn't posted any reviews yet.", resp.User.DisplayName)
	}
	if len(savedResponses) == 0 {
		resp.SavedEmptyMessage = "No saved content to display."
	}

	return resp, nil
}

func (s *userService) ListCommunity(ctx context.Context) ([]response.CommunityMemberResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("load users: %w", err)
	}

	members := make([]response.CommunityMemberResponse, len(users))
	for i, u := range users {
		members[i] = response.CommunityMemberResponse{
			UserResponse: response.UserToResponse(u),
			Bio:          communityBio,
			IsFollowing:  u.ID == followedUserID,
		}
	}

	return members, nil
}
