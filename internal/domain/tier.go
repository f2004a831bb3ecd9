package domain

// TierUnknownSize é a faixa de artistas sem contagem de seguidores conhecida
const TierUnknownSize = "Unknown size"

// ClassifyTier classifica um artista pela contagem de seguidores na plataforma.
// O limite inferior de cada faixa é inclusivo: 100 seguidores no YouTube cai em "100-999".
func ClassifyTier(followers *int64, platform Platform) string {
	cfg, ok := ConfigFor(platform)
	if !ok || followers == nil {
		return TierUnknownSize
	}

	for _, band := range cfg.TierBands {
		if *followers < band.Below {
			return band.Label
		}
	}
	return cfg.TopTierLabel
}

// ArtistTier resolve a faixa de um artista, tratando artista ausente como desconhecido
func ArtistTier(artist *Artist, cfg PlatformConfig) string {
	if artist == nil {
		return TierUnknownSize
	}
	return ClassifyTier(cfg.Followers(artist), cfg.Platform)
}
