package gamifying

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

func metricAt(year, month, submittedDay int, revenue float64) *domain.MonthlyMetric {
	submittedAt := time.Date(year, time.Month(month), submittedDay, 10, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return &domain.MonthlyMetric{
		Year:        year,
		Month:       month,
		Revenue:     revenue,
		SubmittedAt: &submittedAt,
		CreatedAt:   submittedAt,
	}
}

// goalsOnlyAt representa a linha criada pelo cadastro de metas antes de qualquer envio
func goalsOnlyAt(year, month, createdDay int) *domain.MonthlyMetric {
	return &domain.MonthlyMetric{
		Year:      year,
		Month:     month,
		CreatedAt: time.Date(year, time.Month(month), createdDay, 10, 0, 0, 0, time.UTC).AddDate(0, 1, 0),
	}
}

// metricSubmittedLate tem a linha criada cedo pelas metas e os valores enviados depois
func metricSubmittedLate(year, month, createdDay, submittedDay int) *domain.MonthlyMetric {
	m := metricAt(year, month, submittedDay, 0)
	m.CreatedAt = time.Date(year, time.Month(month), createdDay, 10, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return m
}

func TestEvaluate(t *testing.T) {
	current := &domain.MonthlyMetric{Year: 2025, Month: 3, Revenue: 120000, Leads: 60, Procedures: 15}
	previous := &domain.MonthlyMetric{Year: 2025, Month: 2, Revenue: 80000}

	recent := []*domain.MonthlyMetric{
		metricAt(2025, 3, 4, 120000),
		metricAt(2025, 2, 3, 80000),
		metricAt(2025, 1, 5, 70000),
	}

	base := Facts{
		Metric:      current,
		Previous:    previous,
		Recent:      recent,
		Goals:       domain.ResolvedGoals{Revenue: 100000, Leads: 50, Procedures: 10, Posts: 12, Stories: 60},
		TotalMonths: 3,
		Streak:      domain.Streak{Current: 3},
		CohortAverages: map[domain.Period]float64{
			{Year: 2025, Month: 3}: 50000,
			{Year: 2025, Month: 2}: 50000,
			{Year: 2025, Month: 1}: 50000,
		},
		Playbook:        domain.PlaybookProgress{Total: 10, Completed: 10},
		RankingPosition: 2,
	}

	tests := []struct {
		name      string
		criterion domain.Criterion
		facts     func(f Facts) Facts
		expected  bool
	}{
		{"Primeiro registro com um mês", domain.Criterion{Kind: domain.CriterionFirstRecord}, func(f Facts) Facts { f.TotalMonths = 1; return f }, true},
		{"Primeiro registro com três meses", domain.Criterion{Kind: domain.CriterionFirstRecord}, nil, false},
		{"Streak atingido", domain.Criterion{Kind: domain.CriterionStreak, Months: 3}, nil, true},
		{"Streak insuficiente", domain.Criterion{Kind: domain.CriterionStreak, Months: 6}, nil, false},
		{"Pontualidade até dia 5", domain.Criterion{Kind: domain.CriterionPunctuality, Months: 3, Day: 5}, nil, true},
		{"Pontualidade até dia 4", domain.Criterion{Kind: domain.CriterionPunctuality, Months: 3, Day: 4}, nil, false},
		{"Pontualidade sem histórico suficiente", domain.Criterion{Kind: domain.CriterionPunctuality, Months: 6, Day: 10}, nil, false},
		{"Pontualidade usa a data de envio e não a de criação", domain.Criterion{Kind: domain.CriterionPunctuality, Months: 3, Day: 5}, func(f Facts) Facts {
			f.Recent = []*domain.MonthlyMetric{metricSubmittedLate(2025, 3, 1, 20), recent[1], recent[2]}
			return f
		}, false},
		{"Pontualidade com mês só de metas", domain.Criterion{Kind: domain.CriterionPunctuality, Months: 3, Day: 5}, func(f Facts) Facts {
			f.Recent = []*domain.MonthlyMetric{goalsOnlyAt(2025, 3, 1), recent[1], recent[2]}
			return f
		}, false},
		{"Meta de faturamento atingida", domain.Criterion{Kind: domain.CriterionRevenueGoal}, nil, true},
		{"Meta de faturamento não atingida", domain.Criterion{Kind: domain.CriterionRevenueGoal}, func(f Facts) Facts { f.Goals.Revenue = 150000; return f }, false},
		{"Crescimento de 50%", domain.Criterion{Kind: domain.CriterionGrowth, Percent: 50}, nil, true},
		{"Crescimento sem mês anterior", domain.Criterion{Kind: domain.CriterionGrowth, Percent: 25}, func(f Facts) Facts { f.Previous = nil; return f }, false},
		{"Crescimento com faturamento anterior zerado", domain.Criterion{Kind: domain.CriterionGrowth, Percent: 25}, func(f Facts) Facts { f.Previous = &domain.MonthlyMetric{}; return f }, false},
		{"Faturamento mínimo", domain.Criterion{Kind: domain.CriterionMinRevenue, Value: 100000}, nil, true},
		{"Top 3 na segunda posição", domain.Criterion{Kind: domain.CriterionRankingTop, Position: 3}, nil, true},
		{"Top 1 na segunda posição", domain.Criterion{Kind: domain.CriterionRankingTop, Position: 1}, nil, false},
		{"Ranking ainda não calculado", domain.Criterion{Kind: domain.CriterionRankingTop, Position: 3}, func(f Facts) Facts { f.RankingPosition = 0; return f }, false},
		{"Acima da média por 3 meses", domain.Criterion{Kind: domain.CriterionAboveAverage, Months: 3}, nil, true},
		{"Igual à média não conta", domain.Criterion{Kind: domain.CriterionAboveAverage, Months: 3}, func(f Facts) Facts {
			f.CohortAverages = map[domain.Period]float64{{Year: 2025, Month: 3}: 50000, {Year: 2025, Month: 2}: 80000, {Year: 2025, Month: 1}: 50000}
			return f
		}, false},
		{"Leads mínimo", domain.Criterion{Kind: domain.CriterionMinLeads, Value: 50}, nil, true},
		{"Conversão acima de 20%", domain.Criterion{Kind: domain.CriterionConversion, Percent: 20}, nil, true},
		{"Conversão exatamente 25% não supera 25%", domain.Criterion{Kind: domain.CriterionConversion, Percent: 25}, nil, false},
		{"Conversão sem leads", domain.Criterion{Kind: domain.CriterionConversion, Percent: 20}, func(f Facts) Facts {
			f.Metric = &domain.MonthlyMetric{Procedures: 5}
			return f
		}, false},
		{"Playbook completo", domain.Criterion{Kind: domain.CriterionPlaybookComplete}, nil, true},
		{"Playbook vazio", domain.Criterion{Kind: domain.CriterionPlaybookComplete}, func(f Facts) Facts { f.Playbook = domain.PlaybookProgress{}; return f }, false},
		{"Meses de mentoria insuficientes", domain.Criterion{Kind: domain.CriterionMentoringMonths, Value: 6}, nil, false},
		{"Tipo desconhecido", domain.Criterion{Kind: "desconhecido"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := base
			if tt.facts != nil {
				facts = tt.facts(base)
			}
			assert.Equal(t, tt.expected, Evaluate(tt.criterion, facts))
		})
	}
}

func TestRequiredMonths(t *testing.T) {
	badges := []*domain.Badge{
		{Criterion: domain.Criterion{Kind: domain.CriterionStreak, Months: 12}},
		{Criterion: domain.Criterion{Kind: domain.CriterionAboveAverage, Months: 24}},
	}

	assert.Equal(t, 24, requiredMonths(badges, 12))
	assert.Equal(t, 12, requiredMonths(nil, 12))
}
