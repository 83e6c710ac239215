package entity

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	PostsCount     int    `json:"posts_count"`
}
