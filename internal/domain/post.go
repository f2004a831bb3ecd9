package domain

import "time"

// PostStatusPosted é o único status elegível para as análises
const PostStatusPosted = "posted"

type Post struct {
	ID           string    `json:"id"`
	Name         string    `json:"post_name"`
	PostDate     time.Time `json:"post_date"`
	Status       string    `json:"status"`
	ArtistID     string    `json:"artist_id"`
	YouTubeURL   *string   `json:"youtube_url"`
	TikTokURL    *string   `json:"tiktok_url"`
	InstagramURL *string   `json:"instagram_url"`
}
