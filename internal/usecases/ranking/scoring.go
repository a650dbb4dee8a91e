package ranking

import (
	"math"
	"sort"

	"github.com/vfg2006/mentoria-dashboard-api/internal/config"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

// Weights são os pesos e limites da pontuação mensal
type Weights struct {
	Revenue     float64
	Content     float64
	Operational float64
	PercentCap  float64
	BonusCap    int
}

func WeightsFrom(cfg config.Scoring) Weights {
	return Weights{
		Revenue:     cfg.RevenueWeight,
		Content:     cfg.ContentWeight,
		Operational: cfg.OperationalWeight,
		PercentCap:  cfg.PercentCap,
		BonusCap:    cfg.BonusCap,
	}
}

// Score calcula a pontuação do mês. Cada indicador é limitado a PercentCap% da meta
// e cada componente é arredondado separadamente.
func Score(metric *domain.MonthlyMetric, goals domain.ResolvedGoals, bonus int, w Weights) domain.ScoreBreakdown {
	revenuePct := percentOf(metric.Revenue, goals.Revenue, w.PercentCap)

	postsPct := percentOf(float64(metric.Posts), float64(goals.Posts), w.PercentCap)
	storiesPct := percentOf(float64(metric.Stories), float64(goals.Stories), w.PercentCap)

	leadsPct := percentOf(float64(metric.Leads), float64(goals.Leads), w.PercentCap)
	proceduresPct := percentOf(float64(metric.Procedures), float64(goals.Procedures), w.PercentCap)

	breakdown := domain.ScoreBreakdown{
		MenteeID:    metric.MenteeID,
		Revenue:     metric.Revenue,
		RevenuePart: round(revenuePct * w.Revenue),
		ContentPart: round((postsPct + storiesPct) / 2 * w.Content),
		OpsPart:     round((leadsPct + proceduresPct) / 2 * w.Operational),
		Bonus:       min(max(bonus, 0), w.BonusCap),
	}
	breakdown.Total = breakdown.RevenuePart + breakdown.ContentPart + breakdown.OpsPart + breakdown.Bonus

	return breakdown
}

func percentOf(value, goal, limit float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(value/goal*100, limit)
}

func round(v float64) int {
	return int(math.Round(v))
}

// Rank ordena por pontuação. Empates são decididos pelo faturamento
// e depois pelo menor id, então a ordem é sempre a mesma para os mesmos dados.
func Rank(scores []domain.ScoreBreakdown) []domain.ScoreBreakdown {
	ranked := make([]domain.ScoreBreakdown, len(scores))
	copy(ranked, scores)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.MenteeID < b.MenteeID
	})

	return ranked
}
