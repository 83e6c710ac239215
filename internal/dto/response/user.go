package response

import (
	"strings"

	"dootrec/internal/data/entity"
)

const anonymousName = "Anonymous"

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Handle         string `json:"handle"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	Initials       string `json:"initials"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	PostsCount     int    `json:"posts_count"`
}

// CommunityMemberResponse is a user card in the community directory.
type CommunityMemberResponse struct {
	UserResponse
	Bio         string `json:"bio"`
	IsFollowing bool   `json:"is_following"`
}

type ProfileResponse struct {
	User              UserResponse     `json:"user"`
	IsOwnProfile      bool             `json:"is_own_profile"`
	ShowFollowButton  bool             `json:"show_follow_button"`
	IsFollowing       bool             `json:"is_following"`
	Posts             []ReviewResponse `json:"posts"`
	Saved             []ReviewResponse `json:"saved"`
	PostsEmptyMessage string           `json:"posts_empty_message,omitempty"`
	SavedEmptyMessage string           `json:"saved_empty_message,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		DisplayName:    DisplayName(user.Name),
		Handle:         "@" + user.ID,
		AvatarURL:      user.AvatarURL,
		Initials:       Initials(user.Name, 2),
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		PostsCount:     user.PostsCount,
	}
}

// DisplayName falls back to "Anonymous" for unnamed users.
func DisplayName(name string) string {
	if name == "" {
		return anonymousName
	}
	return name
}

// Initials returns the first n characters of name upper-cased, or "U".
func Initials(name string, n int) string {
	if name == "" {
		return "U"
	}
	runes := []rune(name)
	if len(runes) > n {
		runes = runes[:n]
	}
	return strings.ToUpper(string(runes))
}
