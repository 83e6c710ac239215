// Package fixture holds the static catalogue the site serves. Nothing here is
// ever written back; the data is built once at startup.
package fixture

import (
	"time"

	"dootrec/internal/data/entity"
)

// Dataset is the full set of records behind the repositories.
type Dataset struct {
	Users     []*entity.User
	Reviews   []*entity.Review
	Watchlist []*entity.WatchlistItem
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 18, 30, 0, 0, time.UTC)
}

func thumb(title string) string {
	return "https://placehold.co/300x450.png?text=" + title
}

// Default returns a freshly built copy of the bundled catalogue.
func Default() *Dataset {
	return &Dataset{
		Users: []*entity.User{
			{ID: "user1", Name: "Ava Chen", AvatarURL: "https://placehold.co/100x100.png?text=AC", FollowersCount: 1250, FollowingCount: 180, PostsCount: 2},
			{ID: "user2", Name: "Marcus Reid", AvatarURL: "https://placehold.co/100x100.png?text=MR", FollowersCount: 860, FollowingCount: 312, PostsCount: 2},
			{ID: "user3", Name: "Priya Nair", AvatarURL: "https://placehold.co/100x100.png?text=PN", FollowersCount: 2310, FollowingCount: 95, PostsCount: 2},
			{ID: "user4", Name: "Leo Hart", AvatarURL: "https://placehold.co/100x100.png?text=LH", FollowersCount: 145, FollowingCount: 201, PostsCount: 1},
			{ID: "user5", Name: "", AvatarURL: "", FollowersCount: 3, FollowingCount: 12, PostsCount: 1},
		},
		Reviews: []*entity.Review{
			{
				ID: "review1", UserID: "user1", MovieID: "tt1375666", MovieTitle: "Inception",
				OTTLink:      "https://www.netflix.com/title/70131314",
				ThumbnailURL: thumb("Inception"),
				ReviewText:   "A dream heist that rewards every rewatch. The hallway fight still holds up.",
				Genres:       []string{"Sci-Fi", "Thriller", "Action"},
				CreatedAt:    day(time.May, 10), LikesCount: 120, CommentsCount: 14,
			},
			{
				ID: "review2", UserID: "user2", MovieID: "tt0468569", MovieTitle: "The Dark Knight",
				OTTLink:      "https://www.max.com/movies/dark-knight",
				ThumbnailURL: thumb("The+Dark+Knight"),
				ReviewText:   "Ledger's Joker carries the film, but the ferry sequence is the real moral centre.",
				Genres:       []string{"Action", "Crime", "Drama"},
				CreatedAt:    day(time.May, 8), LikesCount: 250, CommentsCount: 41,
			},
			{
				ID: "review3", UserID: "user3", MovieID: "tt0245429", MovieTitle: "Spirited Away",
				OTTLink:      "https://www.netflix.com/title/60023642",
				ThumbnailURL: thumb("Spirited+Away"),
				ReviewText:   "Miyazaki at his most generous. Every frame of the bathhouse is worth pausing on.",
				Genres:       []string{"Animation", "Fantasy", "Family"},
				CreatedAt:    day(time.May, 12), LikesCount: 180, CommentsCount: 22,
			},
			{
				ID: "review4", UserID: "user2", MovieID: "tt4574334", MovieTitle: "Stranger Things",
				OTTLink:      "https://www.netflix.com/title/80057281",
				ThumbnailURL: thumb("Stranger+Things"),
				ReviewText:   "Season one is a perfect eight-hour Spielberg homage. Later seasons sprawl.",
				Genres:       []string{"Sci-Fi", "Horror", "Drama"},
				CreatedAt:    day(time.May, 15), LikesCount: 95, CommentsCount: 9,
			},
			{
				ID: "review5", UserID: "user4", MovieID: "tt1392190", MovieTitle: "Mad Max: Fury Road",
				OTTLink:      "https://www.primevideo.com/detail/mad-max-fury-road",
				ThumbnailURL: thumb("Mad+Max"),
				ReviewText:   "Two hours of practical stunts and almost no dialogue. Action cinema rarely gets better.",
				Genres:       []string{"Action", "Adventure", "Sci-Fi"},
				CreatedAt:    day(time.May, 1), LikesCount: 140, CommentsCount: 17,
			},
			{
				ID: "review6", UserID: "user3", MovieID: "tt6751668", MovieTitle: "Parasite",
				OTTLink:      "https://www.hulu.com/movie/parasite",
				ThumbnailURL: thumb("Parasite"),
				ReviewText:   "Starts as a comedy of manners and ends somewhere much darker. The stairs say everything.",
				Genres:       []string{"Thriller", "Drama", "Comedy"},
				CreatedAt:    day(time.May, 3), LikesCount: 210, CommentsCount: 33,
			},
			{
				ID: "review7", UserID: "user1", MovieID: "tt0386676", MovieTitle: "The Office",
				OTTLink:      "https://www.peacocktv.com/stream-tv/the-office",
				ThumbnailURL: thumb("The+Office"),
				ReviewText:   "Comfort viewing. Skip most of season eight and you lose nothing.",
				Genres:       []string{"Comedy"},
				CreatedAt:    day(time.May, 18), LikesCount: 60, CommentsCount: 5,
			},
			{
				ID: "review8", UserID: "user5", MovieID: "tt15239678", MovieTitle: "Dune: Part Two",
				OTTLink:      "https://www.max.com/movies/dune-part-two",
				ThumbnailURL: thumb("Dune+Part+Two"),
				ReviewText:   "Huge, loud and strange in the best way. See it on the biggest screen you can.",
				Genres:       []string{"Sci-Fi", "Adventure"},
				CreatedAt:    day(time.May, 20), LikesCount: 175, CommentsCount: 28,
			},
			{
				ID: "review9", UserID: "user9", MovieID: "tt2543164", MovieTitle: "Arrival",
				OTTLink:      "https://www.paramountplus.com/movies/arrival",
				ThumbnailURL: thumb("Arrival"),
				ReviewText:   "A first-contact story about grief and language. Quiet, patient and devastating.",
				Genres:       []string{"Sci-Fi", "Drama"},
				CreatedAt:    day(time.April, 27), LikesCount: 40, CommentsCount: 2,
			},
		},
		Watchlist: []*entity.WatchlistItem{
			{ID: "watch1", UserID: "user1", ReviewID: "review2", MovieTitle: "The Dark Knight", ThumbnailURL: thumb("The+Dark+Knight"), AddedAt: day(time.May, 9), Watched: false},
			{ID: "watch2", UserID: "user1", ReviewID: "review6", MovieTitle: "Parasite", ThumbnailURL: thumb("Parasite"), AddedAt: day(time.May, 4), Watched: true},
			{ID: "watch3", UserID: "user1", ReviewID: "review404", MovieTitle: "Oppenheimer", ThumbnailURL: thumb("Oppenheimer"), AddedAt: day(time.May, 21), Watched: false},
			{ID: "watch4", UserID: "user2", ReviewID: "review1", MovieTitle: "Inception", ThumbnailURL: thumb("Inception"), AddedAt: day(time.May, 11), Watched: false},
		},
	}
}
