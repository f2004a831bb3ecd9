package hosteddomain

// SnapshotRow é a linha de snapshot como o gateway REST a serializa.
// snapshot_at chega como texto porque colunas sem fuso não são RFC 3339.
type SnapshotRow struct {
	ID                      int64    `json:"id"`
	PostID                  string   `json:"post_id"`
	Platform                string   `json:"platform"`
	SnapshotAt              string   `json:"snapshot_at"`
	Views                   *float64 `json:"views"`
	Likes                   *float64 `json:"likes"`
	Comments                *float64 `json:"comments"`
	Shares                  *float64 `json:"shares"`
	Reach                   *float64 `json:"reach"`
	Saves                   *float64 `json:"saves"`
	AvgViewDuration         *float64 `json:"avg_view_duration"`
	RetentionRate           *float64 `json:"retention_rate"`
	CompletionRate          *float64 `json:"completion_rate"`
	TikTokRetentionScore    *float64 `json:"tiktok_retention_score"`
	TikTokShareabilityScore *float64 `json:"tiktok_shareability_score"`
}

type PostRow struct {
	ID           string  `json:"id"`
	PostName     string  `json:"post_name"`
	PostDate     string  `json:"post_date"`
	Status       string  `json:"status"`
	ArtistID     *string `json:"artist_id"`
	YouTubeURL   *string `json:"youtube_url"`
	TikTokURL    *string `json:"tiktok_url"`
	InstagramURL *string `json:"instagram_url"`
}

type ArtistRow struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	YouTubeFollowers   *int64 `json:"youtube_followers"`
	TikTokFollowers    *int64 `json:"tiktok_followers"`
	InstagramFollowers *int64 `json:"ig_followers"`
}
