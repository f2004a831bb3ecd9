// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"time"
)

// Platform identifica a plataforma externa onde o post foi publicado
type Platform string

const (
	PlatformYouTube   Platform = "youtube_shorts"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
)

// MetricKey identifica uma métrica de um snapshot
type MetricKey string

const (
	MetricViews                   MetricKey = "views"
	MetricLikes                   MetricKey = "likes"
	MetricComments                MetricKey = "comments"
	MetricShares                  MetricKey = "shares"
	MetricReach                   MetricKey = "reach"
	MetricSaves                   MetricKey = "saves"
	MetricAvgViewDuration         MetricKey = "avg_view_duration"
	MetricRetentionRate           MetricKey = "retention_rate"
	MetricCompletionRate          MetricKey = "completion_rate"
	MetricTikTokRetentionScore    MetricKey = "tiktok_retention_score"
	MetricTikTokShareabilityScore MetricKey = "tiktok_shareability_score"
)

// Snapshot é uma observação imutável das métricas de um post em uma plataforma.
// Campos nulos na origem ficam nil e valem 0 nos cálculos.
type Snapshot struct {
	ID                      int64     `json:"id"`
	PostID                  string    `json:"post_id"`
	Platform                Platform  `json:"platform"`
	SnapshotAt              time.Time `json:"snapshot_at"`
	Views                   *float64  `json:"views"`
	Likes                   *float64  `json:"likes"`
	Comments                *float64  `json:"comments"`
	Shares                  *float64  `json:"shares,omitempty"`
	Reach                   *float64  `json:"reach,omitempty"`
	Saves                   *float64  `json:"saves,omitempty"`
	AvgViewDuration         *float64  `json:"avg_view_duration,omitempty"`
	RetentionRate           *float64  `json:"retention_rate,omitempty"`
	CompletionRate          *float64  `json:"completion_rate,omitempty"`
	TikTokRetentionScore    *float64  `json:"tiktok_retention_score,omitempty"`
	TikTokShareabilityScore *float64  `json:"tiktok_shareability_score,omitempty"`
}

// Value retorna o valor bruto da métrica, ou 0 quando ausente ou não numérico
func (s *Snapshot) Value(key MetricKey) float64 {
	if s == nil {
		return 0
	}

	var v *float64
	switch key {
	case MetricViews:
		v = s.Views
	case MetricLikes:
		v = s.Likes
	case MetricComments:
		v = s.Comments
	case MetricShares:
		v = s.Shares
	case MetricReach:
		v = s.Reach
	case MetricSaves:
		v = s.Saves
	case MetricAvgViewDuration:
		v = s.AvgViewDuration
	case MetricRetentionRate:
		v = s.RetentionRate
	case MetricCompletionRate:
		v = s.CompletionRate
	case MetricTikTokRetentionScore:
		v = s.TikTokRetentionScore
	case MetricTikTokShareabilityScore:
		v = s.TikTokShareabilityScore
	}

	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
