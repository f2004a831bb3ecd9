package domain

// ScoreTerm é um termo ponderado da fórmula de score de uma plataforma
type ScoreTerm struct {
	Metric MetricKey
	Weight float64
}

// TierBand é uma faixa de seguidores com limite superior exclusivo
type TierBand struct {
	Below int64
	Label string
}

// PlatformConfig concentra tudo que diferencia uma plataforma das outras.
// O pipeline de análise é único e parametrizado por esta tabela.
type PlatformConfig struct {
	Platform     Platform
	Name         string
	MetricKeys   []MetricKey
	ScoreTerms   []ScoreTerm
	TierBands    []TierBand
	TopTierLabel string
	Followers    func(artist *Artist) *int64
	URL          func(post *Post) *string
}

// TierLabels retorna os rótulos na ordem de exibição, com "Unknown size" por último
func (c PlatformConfig) TierLabels() []string {
	labels := make([]string, 0, len(c.TierBands)+2)
	for _, band := range c.TierBands {
		labels = append(labels, band.Label)
	}
	return append(labels, c.TopTierLabel, TierUnknownSize)
}

// Os pesos do TikTok são os efetivamente executados em produção (x10, x6, x4, x1)
var platformConfigs = []PlatformConfig{
	{
		Platform: PlatformYouTube,
		Name:     "YouTube",
		MetricKeys: []MetricKey{
			MetricViews, MetricLikes, MetricComments, MetricReach,
			MetricAvgViewDuration, MetricRetentionRate, MetricCompletionRate,
		},
		ScoreTerms: []ScoreTerm{
			{Metric: MetricComments, Weight: 10},
			{Metric: MetricLikes, Weight: 1},
			{Metric: MetricViews, Weight: 0.5},
		},
		TierBands: []TierBand{
			{Below: 100, Label: "< 100 followers"},
			{Below: 1000, Label: "100-999 followers"},
		},
		TopTierLabel: "1000+ followers",
		Followers:    func(a *Artist) *int64 { return a.YouTubeFollowers },
		URL:          func(p *Post) *string { return p.YouTubeURL },
	},
	{
		Platform: PlatformTikTok,
		Name:     "TikTok",
		MetricKeys: []MetricKey{
			MetricViews, MetricLikes, MetricComments, MetricShares,
			MetricTikTokRetentionScore, MetricTikTokShareabilityScore,
		},
		ScoreTerms: []ScoreTerm{
			{Metric: MetricTikTokShareabilityScore, Weight: 10},
			{Metric: MetricTikTokRetentionScore, Weight: 6},
			{Metric: MetricComments, Weight: 4},
			{Metric: MetricViews, Weight: 1},
		},
		TierBands: []TierBand{
			{Below: 300, Label: "< 300 followers"},
			{Below: 1000, Label: "300-999 followers"},
		},
		TopTierLabel: "1000+ followers",
		Followers:    func(a *Artist) *int64 { return a.TikTokFollowers },
		URL:          func(p *Post) *string { return p.TikTokURL },
	},
	{
		Platform: PlatformInstagram,
		Name:     "Instagram",
		MetricKeys: []MetricKey{
			MetricViews, MetricLikes, MetricComments, MetricReach,
			MetricSaves, MetricShares,
		},
		ScoreTerms: []ScoreTerm{
			{Metric: MetricShares, Weight: 3},
			{Metric: MetricComments, Weight: 2},
			{Metric: MetricLikes, Weight: 1},
			{Metric: MetricViews, Weight: 0.1},
		},
		TierBands: []TierBand{
			{Below: 1000, Label: "< 1000 followers"},
			{Below: 3000, Label: "1000-2999 followers"},
		},
		TopTierLabel: "3000+ followers",
		Followers:    func(a *Artist) *int64 { return a.InstagramFollowers },
		URL:          func(p *Post) *string { return p.InstagramURL },
	},
}

// PlatformConfigs retorna a tabela de plataformas na ordem canônica de exibição
func PlatformConfigs() []PlatformConfig {
	configs := make([]PlatformConfig, len(platformConfigs))
	copy(configs, platformConfigs)
	return configs
}

// ConfigFor retorna a configuração de uma plataforma
func ConfigFor(platform Platform) (PlatformConfig, bool) {
	for _, cfg := range platformConfigs {
		if cfg.Platform == platform {
			return cfg, true
		}
	}
	return PlatformConfig{}, false
}

// ParsePlatform aceita o identificador do armazenamento ("youtube_shorts") ou o nome curto
func ParsePlatform(value string) (Platform, bool) {
	switch value {
	case string(PlatformYouTube), "youtube":
		return PlatformYouTube, true
	case string(PlatformTikTok):
		return PlatformTikTok, true
	case string(PlatformInstagram), "ig":
		return PlatformInstagram, true
	}
	return "", false
}
