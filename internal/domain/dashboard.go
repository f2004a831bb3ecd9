package domain

import "time"

// Janelas de recência aceitas pelo dashboard, em dias
var RecencyWindows = []int{7, 14, 28, 90}

// StandoutCategory agrupa as métricas comparadas entre plataformas
type StandoutCategory string

const (
	CategoryShares    StandoutCategory = "shares"
	CategoryComments  StandoutCategory = "comments"
	CategoryRetention StandoutCategory = "retention"
	CategoryViews     StandoutCategory = "views"
)

// StandoutCategories na ordem de exibição
var StandoutCategories = []StandoutCategory{CategoryShares, CategoryComments, CategoryRetention, CategoryViews}

type DashboardFilters struct {
	WindowDays int
	Page       int
	PageSize   int
	AsOf       *time.Time
}

type Dashboard struct {
	GeneratedAt time.Time                       `json:"generated_at"`
	AsOf        time.Time                       `json:"as_of"`
	Platforms   []PlatformStats                 `json:"platforms"`
	Standouts   map[StandoutCategory][]Standout `json:"standouts"`
	Recent      RecentPosts                     `json:"recent"`
	Errors      map[Platform]string             `json:"errors,omitempty"`
}

// PlatformStats é a visão de uma plataforma. Loaded=false indica falha isolada na busca.
type PlatformStats struct {
	Platform   Platform                         `json:"platform"`
	Name       string                           `json:"name"`
	Loaded     bool                             `json:"loaded"`
	Diagnostic string                           `json:"diagnostic,omitempty"`
	PostCount  int                              `json:"post_count"`
	Tiers      []TierGroup                      `json:"tiers"`
	Averages   map[string]ArtistPlatformAverage `json:"averages"`
}

type TierGroup struct {
	Tier       string       `json:"tier"`
	TotalPosts int          `json:"total_posts"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
	Posts      []RankedPost `json:"posts"`
	Best       []RankedPost `json:"best"`
	Worst      []RankedPost `json:"worst"`
}

type RankedPost struct {
	PostID     string         `json:"post_id"`
	PostName   string         `json:"post_name"`
	PostDate   time.Time      `json:"post_date"`
	ArtistID   string         `json:"artist_id"`
	ArtistName string         `json:"artist_name"`
	Score      float64        `json:"score"`
	Snapshot   Snapshot       `json:"snapshot"`
	Peers      PeerComparison `json:"peers"`
}

// PeerComparison compara as visualizações do post com a média dos pares da mesma faixa
type PeerComparison struct {
	Enough           bool    `json:"enough"`
	PeerCount        int     `json:"peer_count"`
	PeerAverageViews float64 `json:"peer_average_views,omitempty"`
	ViewsDelta       float64 `json:"views_delta,omitempty"`
	Message          string  `json:"message,omitempty"`
}

type Standout struct {
	PostID    string               `json:"post_id"`
	PostName  string               `json:"post_name"`
	ArtistID  string               `json:"artist_id"`
	Score     float64              `json:"score"`
	Platforms []Platform           `json:"platforms"`
	Deltas    map[Platform]float64 `json:"deltas"`
}

type RecentPosts struct {
	WindowDays int          `json:"window_days"`
	From       time.Time    `json:"from"`
	To         time.Time    `json:"to"`
	Posts      []RecentPost `json:"posts"`
}

type RecentPost struct {
	PostID     string               `json:"post_id"`
	PostName   string               `json:"post_name"`
	PostDate   time.Time            `json:"post_date"`
	ArtistID   string               `json:"artist_id"`
	TotalViews float64              `json:"total_views"`
	Views      map[Platform]float64 `json:"views"`
}
