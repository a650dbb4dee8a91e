package gamifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name     string
		metrics  []*domain.MonthlyMetric
		expected domain.Streak
	}{
		{
			name:     "Sem métricas",
			metrics:  nil,
			expected: domain.Streak{Current: 0, Longest: 0, NextMilestone: 3, ProgressPercent: 0},
		},
		{
			name: "Três meses consecutivos no prazo",
			metrics: []*domain.MonthlyMetric{
				metricAt(2025, 3, 5, 0),
				metricAt(2025, 2, 10, 0),
				metricAt(2025, 1, 2, 0),
			},
			expected: domain.Streak{Current: 3, Longest: 3, NextMilestone: 6, ProgressPercent: 50},
		},
		{
			name: "Virada de ano mantém a sequência",
			metrics: []*domain.MonthlyMetric{
				metricAt(2025, 1, 5, 0),
				metricAt(2024, 12, 5, 0),
			},
			expected: domain.Streak{Current: 2, Longest: 2, NextMilestone: 3, ProgressPercent: 67},
		},
		{
			name: "Mês pulado quebra a sequência atual",
			metrics: []*domain.MonthlyMetric{
				metricAt(2025, 5, 5, 0),
				metricAt(2025, 3, 5, 0),
				metricAt(2025, 2, 5, 0),
				metricAt(2025, 1, 5, 0),
			},
			expected: domain.Streak{Current: 1, Longest: 3, NextMilestone: 3, ProgressPercent: 33},
		},
		{
			name: "Registro atrasado no mês mais recente zera a sequência atual",
			metrics: []*domain.MonthlyMetric{
				metricAt(2025, 3, 15, 0),
				metricAt(2025, 2, 5, 0),
				metricAt(2025, 1, 5, 0),
			},
			expected: domain.Streak{Current: 0, Longest: 2, NextMilestone: 3, ProgressPercent: 0},
		},
		{
			name: "Linha criada cedo pelas metas mas enviada após o prazo",
			metrics: []*domain.MonthlyMetric{
				metricSubmittedLate(2025, 3, 1, 15),
				metricAt(2025, 2, 5, 0),
			},
			expected: domain.Streak{Current: 0, Longest: 1, NextMilestone: 3, ProgressPercent: 0},
		},
		{
			name: "Mês só com metas não conta como registro",
			metrics: []*domain.MonthlyMetric{
				goalsOnlyAt(2025, 3, 1),
				metricAt(2025, 2, 5, 0),
				metricAt(2025, 1, 5, 0),
			},
			expected: domain.Streak{Current: 0, Longest: 2, NextMilestone: 3, ProgressPercent: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateStreak(tt.metrics, 10))
		})
	}
}

func TestCalculateStreak_TwelveMonths(t *testing.T) {
	metrics := make([]*domain.MonthlyMetric, 0, 12)
	p := domain.Period{Year: 2025, Month: 12}
	for i := 0; i < 12; i++ {
		metrics = append(metrics, metricAt(p.Year, p.Month, 1, 0))
		p = p.Previous()
	}

	streak := CalculateStreak(metrics, 10)

	assert.Equal(t, 12, streak.Current)
	assert.Equal(t, 12, streak.NextMilestone)
	assert.Equal(t, 100, streak.ProgressPercent)
}
