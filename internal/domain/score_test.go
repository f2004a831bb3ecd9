package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func metric(v float64) *float64 { return &v }

func TestYouTubeScore(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *Snapshot
		expected float64
	}{
		{
			name:     "Comentários zerados são descartados do produto",
			snapshot: &Snapshot{Comments: metric(0), Likes: metric(5), Views: metric(100)},
			expected: 250,
		},
		{
			name:     "Todos os termos zerados resultam em zero",
			snapshot: &Snapshot{Comments: metric(0), Likes: metric(0), Views: metric(0)},
			expected: 0,
		},
		{
			name:     "Todos os termos presentes",
			snapshot: &Snapshot{Comments: metric(2), Likes: metric(3), Views: metric(10)},
			expected: 20 * 3 * 5,
		},
		{
			name:     "Métricas nulas tratadas como ausentes",
			snapshot: &Snapshot{Views: metric(40)},
			expected: 20,
		},
		{
			name:     "Valores negativos são descartados",
			snapshot: &Snapshot{Comments: metric(-3), Likes: metric(4), Views: metric(-1)},
			expected: 4,
		},
		{
			name:     "Snapshot ausente",
			snapshot: nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, YouTubeScore(tt.snapshot), 1e-9)
		})
	}
}

func TestTikTokScore(t *testing.T) {
	snapshot := &Snapshot{
		TikTokShareabilityScore: metric(0.5),
		TikTokRetentionScore:    metric(0.5),
		Comments:                metric(2),
		Views:                   metric(100),
	}

	assert.InDelta(t, 5*3*8*100.0, TikTokScore(snapshot), 1e-9)
	assert.Equal(t, 0.0, TikTokScore(&Snapshot{}))
}

func TestInstagramScore(t *testing.T) {
	snapshot := &Snapshot{
		Shares:   metric(2),
		Comments: metric(3),
		Likes:    metric(10),
		Views:    metric(1000),
	}

	assert.InDelta(t, 6*6*10*100.0, InstagramScore(snapshot), 1e-9)
	assert.InDelta(t, 6.0, InstagramScore(&Snapshot{Shares: metric(2), Saves: metric(50)}), 1e-9)
}

func TestScore_OrdemDoCenarioCompleto(t *testing.T) {
	post1 := &Snapshot{Views: metric(1000), Likes: metric(50), Comments: metric(5)}
	post2 := &Snapshot{Views: metric(200), Likes: metric(5), Comments: metric(0)}
	post3 := &Snapshot{Views: metric(5000), Likes: metric(300), Comments: metric(40)}

	assert.Greater(t, YouTubeScore(post3), YouTubeScore(post1))
	assert.Greater(t, YouTubeScore(post1), YouTubeScore(post2))
	assert.Greater(t, YouTubeScore(post2), 0.0)
}

func TestRelativeDelta(t *testing.T) {
	assert.InDelta(t, 0.5, RelativeDelta(150, 100), 1e-9)
	assert.InDelta(t, -0.25, RelativeDelta(75, 100), 1e-9)
	assert.Equal(t, 0.0, RelativeDelta(10, 0))
	assert.Equal(t, 0.0, RelativeDelta(10, -5))
}

func TestPerThousandViews(t *testing.T) {
	assert.InDelta(t, 25.0, PerThousandViews(5, 200), 1e-9)
	assert.Equal(t, 0.0, PerThousandViews(5, 0))
}

func TestSnapshot_Value_NaoNumerico(t *testing.T) {
	snapshot := &Snapshot{Views: metric(math.NaN()), Likes: metric(math.Inf(1)), Comments: metric(7)}

	assert.Equal(t, 0.0, snapshot.Value(MetricViews))
	assert.Equal(t, 0.0, snapshot.Value(MetricLikes))
	assert.Equal(t, 7.0, snapshot.Value(MetricComments))
	assert.Equal(t, 0.0, snapshot.Value(MetricSaves))
	assert.Equal(t, 0.0, snapshot.Value(MetricKey("desconhecida")))

	var empty *Snapshot
	assert.Equal(t, 0.0, empty.Value(MetricViews))
}
