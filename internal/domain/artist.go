package domain

// Artist é lido do armazenamento externo, somente leitura para o core
type Artist struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	YouTubeFollowers   *int64 `json:"youtube_followers"`
	TikTokFollowers    *int64 `json:"tiktok_followers"`
	InstagramFollowers *int64 `json:"ig_followers"`
}
