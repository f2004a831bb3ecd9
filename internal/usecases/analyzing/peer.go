package analyzing

import "github.com/vfg2006/posts-stats-api/internal/domain"

const (
	// MinPeerCount é o mínimo de outros posts na faixa para comparar com os pares
	MinPeerCount = 3

	NotEnoughDataMessage = "not enough data"
)

// ComparePeers compara as visualizações de cada post com a média dos demais posts do grupo.
// O resultado segue a ordem de views.
func ComparePeers(views []float64) []domain.PeerComparison {
	var total float64
	for _, v := range views {
		total += v
	}

	peerCount := len(views) - 1
	comparisons := make([]domain.PeerComparison, len(views))

	for i, v := range views {
		if peerCount < MinPeerCount {
			comparisons[i] = domain.PeerComparison{
				PeerCount: max(peerCount, 0),
				Message:   NotEnoughDataMessage,
			}
			continue
		}

		peerAverage := (total - v) / float64(peerCount)
		comparisons[i] = domain.PeerComparison{
			Enough:           true,
			PeerCount:        peerCount,
			PeerAverageViews: peerAverage,
			ViewsDelta:       domain.RelativeDelta(v, peerAverage),
		}
	}

	return comparisons
}
