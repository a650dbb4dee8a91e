package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMetricField = errors.New("campo de métrica inválido")
	ErrNegativeMetric     = errors.New("valor de métrica não pode ser negativo")
)

// MetricField são os campos que aceitam salvamento individual
type MetricField string

const (
	MetricRevenue    MetricField = "faturamento"
	MetricProfit     MetricField = "lucro"
	MetricLeads      MetricField = "leads"
	MetricProcedures MetricField = "procedimentos"
	MetricPosts      MetricField = "posts_feed"
	MetricStories    MetricField = "stories"
)

var metricFields = map[MetricField]string{
	MetricRevenue:    "revenue",
	MetricProfit:     "profit",
	MetricLeads:      "leads",
	MetricProcedures: "procedures",
	MetricPosts:      "posts",
	MetricStories:    "stories",
}

// ParseMetricField aceita tanto o nome exibido no painel quanto o nome da coluna
func ParseMetricField(s string) (MetricField, error) {
	f := MetricField(s)
	if _, ok := metricFields[f]; ok {
		return f, nil
	}
	for field, column := range metricFields {
		if column == s {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMetricField, s)
}

// Column retorna a coluna correspondente na tabela monthly_metrics
func (f MetricField) Column() string {
	return metricFields[f]
}

// IsInteger indica os campos de contagem, que não aceitam frações
func (f MetricField) IsInteger() bool {
	return f != MetricRevenue && f != MetricProfit
}

type MonthlyMetric struct {
	ID          int64      `json:"id"`
	MenteeID    int64      `json:"mentee_id"`
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	Revenue     float64    `json:"revenue"`
	Profit      float64    `json:"profit"`
	Leads       int        `json:"leads"`
	Procedures  int        `json:"procedures"`
	Posts       int        `json:"posts"`
	Stories     int        `json:"stories"`
	Notes       *string    `json:"notes"`
	Goals       Goals      `json:"goals"`
	SubmittedAt *time.Time `json:"submitted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (m *MonthlyMetric) Period() Period {
	return Period{Year: m.Year, Month: m.Month}
}

// Submitted indica se o mentorado já enviou valores para o mês.
// Linhas criadas só com metas não contam como registro.
func (m *MonthlyMetric) Submitted() bool {
	return m != nil && m.SubmittedAt != nil
}

// SubmittedOnTime indica se o primeiro envio aconteceu até o dia limite
func (m *MonthlyMetric) SubmittedOnTime(deadlineDay int) bool {
	return m.Submitted() && m.SubmittedAt.Day() <= deadlineDay
}

// Value lê o campo informado
func (m *MonthlyMetric) Value(f MetricField) float64 {
	switch f {
	case MetricRevenue:
		return m.Revenue
	case MetricProfit:
		return m.Profit
	case MetricLeads:
		return float64(m.Leads)
	case MetricProcedures:
		return float64(m.Procedures)
	case MetricPosts:
		return float64(m.Posts)
	case MetricStories:
		return float64(m.Stories)
	}
	return 0
}

// Goals são as metas opcionais de um mês específico
type Goals struct {
	Revenue    *float64 `json:"revenue,omitempty"`
	Leads      *int     `json:"leads,omitempty"`
	Procedures *int     `json:"procedures,omitempty"`
	Posts      *int     `json:"posts,omitempty"`
	Stories    *int     `json:"stories,omitempty"`
}

func (g Goals) IsEmpty() bool {
	return g.Revenue == nil && g.Leads == nil && g.Procedures == nil && g.Posts == nil && g.Stories == nil
}

// EffectiveGoals resolve as metas do mês: meta do mês, depois do mentorado
func EffectiveGoals(metric *MonthlyMetric, mentee *Mentee) ResolvedGoals {
	resolved := ResolvedGoals{
		Revenue:    DefaultRevenueGoal,
		Leads:      DefaultLeadsGoal,
		Procedures: DefaultProceduresGoal,
		Posts:      DefaultPostsGoal,
		Stories:    DefaultStoriesGoal,
	}

	if mentee != nil {
		if mentee.RevenueGoal > 0 {
			resolved.Revenue = mentee.RevenueGoal
		}
		if mentee.LeadsGoal > 0 {
			resolved.Leads = mentee.LeadsGoal
		}
		if mentee.ProceduresGoal > 0 {
			resolved.Procedures = mentee.ProceduresGoal
		}
		if mentee.PostsGoal > 0 {
			resolved.Posts = mentee.PostsGoal
		}
		if mentee.StoriesGoal > 0 {
			resolved.Stories = mentee.StoriesGoal
		}
	}

	if metric == nil {
		return resolved
	}

	if g := metric.Goals.Revenue; g != nil && *g > 0 {
		resolved.Revenue = *g
	}
	if g := metric.Goals.Leads; g != nil && *g > 0 {
		resolved.Leads = *g
	}
	if g := metric.Goals.Procedures; g != nil && *g > 0 {
		resolved.Procedures = *g
	}
	if g := metric.Goals.Posts; g != nil && *g > 0 {
		resolved.Posts = *g
	}
	if g := metric.Goals.Stories; g != nil && *g > 0 {
		resolved.Stories = *g
	}

	return resolved
}

// ResolvedGoals são as metas efetivas, sempre positivas
type ResolvedGoals struct {
	Revenue    float64 `json:"revenue"`
	Leads      int     `json:"leads"`
	Procedures int     `json:"procedures"`
	Posts      int     `json:"posts"`
	Stories    int     `json:"stories"`
}

// SubmitMetricsRequest é o formulário completo do mês
type SubmitMetricsRequest struct {
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Leads      int     `json:"leads"`
	Procedures int     `json:"procedures"`
	Posts      int     `json:"posts"`
	Stories    int     `json:"stories"`
	Notes      *string `json:"notes"`
}

func (r SubmitMetricsRequest) Validate() error {
	if r.Revenue < 0 || r.Profit < 0 || r.Leads < 0 || r.Procedures < 0 || r.Posts < 0 || r.Stories < 0 {
		return ErrNegativeMetric
	}
	return nil
}

// UpdateMetricFieldRequest é o salvamento automático de um único campo
type UpdateMetricFieldRequest struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// CohortAverage é a média de faturamento da turma em um mês
type CohortAverage struct {
	Period  Period  `json:"period"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
