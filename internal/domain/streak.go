package domain

// Streak representa a sequência de meses registrados dentro do prazo
type Streak struct {
	Current         int `json:"current_streak"`
	Longest         int `json:"longest_streak"`
	NextMilestone   int `json:"next_milestone"`
	ProgressPercent int `json:"progress_percent"`
}

// StreakMilestones são os marcos das badges de consistência
var StreakMilestones = []int{3, 6, 12}

// NextStreakMilestone retorna o próximo marco ainda não alcançado
func NextStreakMilestone(current int) int {
	for _, m := range StreakMilestones {
		if current < m {
			return m
		}
	}
	return StreakMilestones[len(StreakMilestones)-1]
}
