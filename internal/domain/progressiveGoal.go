package domain

import "time"

type GoalType string

const (
	GoalRevenue    GoalType = "faturamento"
	GoalLeads      GoalType = "leads"
	GoalProcedures GoalType = "procedimentos"
	GoalPosts      GoalType = "posts"
	GoalStories    GoalType = "stories"
)

// GoalTypes na ordem em que são avaliados
var GoalTypes = []GoalType{GoalRevenue, GoalLeads, GoalProcedures, GoalPosts, GoalStories}

// ProgressiveGoal é uma meta que sobe a cada vez que é atingida
type ProgressiveGoal struct {
	ID           int64     `json:"id"`
	MenteeID     int64     `json:"mentee_id"`
	Type         GoalType  `json:"type"`
	CurrentGoal  float64   `json:"current_goal"`
	InitialGoal  float64   `json:"initial_goal"`
	IncrementPct int       `json:"increment_pct"`
	TimesMet     int       `json:"times_met"`
	LastYear     int       `json:"last_year"`
	LastMonth    int       `json:"last_month"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AppliedIn indica se a meta já foi ajustada no período
func (g *ProgressiveGoal) AppliedIn(p Period) bool {
	return g.LastYear == p.Year && g.LastMonth == p.Month
}

// For retorna a meta base de cada tipo
func (r ResolvedGoals) For(t GoalType) float64 {
	switch t {
	case GoalRevenue:
		return r.Revenue
	case GoalLeads:
		return float64(r.Leads)
	case GoalProcedures:
		return float64(r.Procedures)
	case GoalPosts:
		return float64(r.Posts)
	case GoalStories:
		return float64(r.Stories)
	}
	return 0
}

// ValueFor retorna o valor realizado no mês para o tipo de meta
func (m *MonthlyMetric) ValueFor(t GoalType) float64 {
	switch t {
	case GoalRevenue:
		return m.Revenue
	case GoalLeads:
		return float64(m.Leads)
	case GoalProcedures:
		return float64(m.Procedures)
	case GoalPosts:
		return float64(m.Posts)
	case GoalStories:
		return float64(m.Stories)
	}
	return 0
}
