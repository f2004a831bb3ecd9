package domain

// SafeProduct multiplica os termos presentes. Termos com valor bruto <= 0 são
// descartados em vez de zerar o produto; sem nenhum termo presente o resultado é 0.
func SafeProduct(snapshot *Snapshot, terms []ScoreTerm) float64 {
	product := 1.0
	present := 0

	for _, term := range terms {
		raw := snapshot.Value(term.Metric)
		if raw <= 0 {
			continue
		}
		product *= raw * term.Weight
		present++
	}

	if present == 0 {
		return 0
	}
	return product
}

// Score calcula o score de performance de um snapshot para a plataforma dele.
// Scores só são comparáveis dentro de uma mesma faixa e plataforma.
func Score(snapshot *Snapshot, platform Platform) float64 {
	if snapshot == nil {
		return 0
	}

	cfg, ok := ConfigFor(platform)
	if !ok {
		return 0
	}
	return SafeProduct(snapshot, cfg.ScoreTerms)
}

// RelativeDelta retorna (value - average) / average, ou 0 quando a média não é positiva
func RelativeDelta(value, average float64) float64 {
	if average > 0 {
		return (value - average) / average
	}
	return 0
}

// PerThousandViews retorna a taxa da métrica a cada 1000 visualizações
func PerThousandViews(metric, views float64) float64 {
	if views > 0 {
		return metric / views * 1000
	}
	return 0
}

func YouTubeScore(snapshot *Snapshot) float64 { return Score(snapshot, PlatformYouTube) }

func TikTokScore(snapshot *Snapshot) float64 { return Score(snapshot, PlatformTikTok) }

func InstagramScore(snapshot *Snapshot) float64 { return Score(snapshot, PlatformInstagram) }
