package domain

// ArtistPlatformAverage é a média móvel das métricas de um artista em uma plataforma,
// calculada sobre os posts mais recentes com snapshot. Nunca é persistida.
type ArtistPlatformAverage struct {
	ArtistID  string                `json:"artist_id"`
	Platform  Platform              `json:"platform"`
	PostCount int                   `json:"post_count"`
	Metrics   map[MetricKey]float64 `json:"metrics"`
}

// Value retorna a média da métrica, ou 0 quando não rastreada
func (a *ArtistPlatformAverage) Value(key MetricKey) float64 {
	if a == nil {
		return 0
	}
	return a.Metrics[key]
}
