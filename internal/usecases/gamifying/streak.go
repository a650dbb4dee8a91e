package gamifying

import (
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
)

// CalculateStreak conta os meses consecutivos registrados até o dia limite.
// metrics deve estar ordenado do mais recente para o mais antigo.
// Um mês pulado ou registrado após o prazo quebra a sequência.
func CalculateStreak(metrics []*domain.MonthlyMetric, deadlineDay int) domain.Streak {
	if len(metrics) == 0 {
		return domain.Streak{NextMilestone: domain.NextStreakMilestone(0)}
	}

	var (
		current, longest, run int
		active                = true
		previous              *domain.Period
	)

	closeRun := func() {
		if active {
			current = run
			active = false
		}
		longest = max(longest, run)
		run = 0
	}

	for _, m := range metrics {
		period := m.Period()
		if previous != nil && period.Next() != *previous {
			closeRun()
		}

		if m.SubmittedOnTime(deadlineDay) {
			run++
			longest = max(longest, run)
		} else {
			closeRun()
		}

		previous = &period
	}

	if active {
		current = run
	}
	longest = max(longest, run)

	next := domain.NextStreakMilestone(current)
	progress := 100
	if current < next {
		progress = int(float64(current)/float64(next)*100 + 0.5)
	}

	return domain.Streak{
		Current:         current,
		Longest:         longest,
		NextMilestone:   next,
		ProgressPercent: progress,
	}
}
