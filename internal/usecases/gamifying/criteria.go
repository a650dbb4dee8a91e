package gamifying

import (
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

// Facts é o retrato do mentorado no período avaliado
type Facts struct {
	Metric          *domain.MonthlyMetric
	Previous        *domain.MonthlyMetric
	Recent          []*domain.MonthlyMetric // mais recente primeiro
	Goals           domain.ResolvedGoals
	TotalMonths     int
	Streak          domain.Streak
	CohortAverages  map[domain.Period]float64
	Playbook        domain.PlaybookProgress
	RankingPosition int // 0 quando o período ainda não tem ranking
}

// Evaluate verifica se os fatos satisfazem o critério
func Evaluate(c domain.Criterion, f Facts) bool {
	switch c.Kind {
	case domain.CriterionFirstRecord:
		return f.TotalMonths == 1

	case domain.CriterionStreak:
		return f.Streak.Current >= c.Months

	case domain.CriterionPunctuality:
		recent, ok := lastN(f.Recent, c.Months)
		if !ok {
			return false
		}
		for _, m := range recent {
			if !m.SubmittedOnTime(c.Day) {
				return false
			}
		}
		return true

	case domain.CriterionRevenueGoal:
		return f.Metric != nil && f.Metric.Revenue >= f.Goals.Revenue

	case domain.CriterionGrowth:
		if f.Metric == nil || f.Previous == nil || f.Previous.Revenue <= 0 {
			return false
		}
		growth := (f.Metric.Revenue - f.Previous.Revenue) / f.Previous.Revenue * 100
		return growth >= c.Percent

	case domain.CriterionMinRevenue:
		return f.Metric != nil && f.Metric.Revenue >= c.Value

	case domain.CriterionRankingTop:
		return f.RankingPosition > 0 && f.RankingPosition <= c.Position

	case domain.CriterionAboveAverage:
		recent, ok := lastN(f.Recent, c.Months)
		if !ok {
			return false
		}
		for _, m := range recent {
			avg, found := f.CohortAverages[m.Period()]
			if !found || m.Revenue <= avg {
				return false
			}
		}
		return true

	case domain.CriterionMinLeads:
		return f.Metric != nil && float64(f.Metric.Leads) >= c.Value

	case domain.CriterionConversion:
		if f.Metric == nil || f.Metric.Leads <= 0 {
			return false
		}
		rate := float64(f.Metric.Procedures) / float64(f.Metric.Leads) * 100
		return rate > c.Percent

	case domain.CriterionPlaybookComplete:
		return f.Playbook.Total > 0 && f.Playbook.Completed >= f.Playbook.Total

	case domain.CriterionMentoringMonths:
		return float64(f.TotalMonths) >= c.Value
	}

	return false
}

func lastN(metrics []*domain.MonthlyMetric, n int) ([]*domain.MonthlyMetric, bool) {
	if n < 1 || len(metrics) < n {
		return nil, false
	}
	return metrics[:n], true
}

// requiredMonths é o histórico necessário para avaliar todas as badges
func requiredMonths(badges []*domain.Badge, minimum int) int {
	months := minimum
	for _, b := range badges {
		if b.Criterion.Months > months {
			months = b.Criterion.Months
		}
	}
	return months
}
