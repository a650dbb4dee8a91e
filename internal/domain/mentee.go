// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Metas padrão aplicadas quando o mentorado não define as suas
const (
	DefaultRevenueGoal    = 16000
	DefaultLeadsGoal      = 50
	DefaultProceduresGoal = 10
	DefaultPostsGoal      = 12
	DefaultStoriesGoal    = 60
)

// OnboardingState é derivado da existência de métricas registradas
type OnboardingState string

const (
	OnboardingNew    OnboardingState = "novo"
	OnboardingActive OnboardingState = "ativo"
)

type Mentee struct {
	ID                  int64      `json:"id"`
	UserID              string     `json:"user_id"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	PhotoURL            *string    `json:"photo_url"`
	Cohort              string     `json:"cohort"`
	RevenueGoal         float64    `json:"revenue_goal"`
	LeadsGoal           int        `json:"leads_goal"`
	ProceduresGoal      int        `json:"procedures_goal"`
	PostsGoal           int        `json:"posts_goal"`
	StoriesGoal         int        `json:"stories_goal"`
	Active              bool       `json:"active"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	InstagramConnected  bool       `json:"instagram_connected"`
	LastMetricsReminder *time.Time `json:"last_metrics_reminder"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ApplyDefaultGoals preenche as metas não definidas
func (m *Mentee) ApplyDefaultGoals() {
	if m.RevenueGoal <= 0 {
		m.RevenueGoal = DefaultRevenueGoal
	}
	if m.LeadsGoal <= 0 {
		m.LeadsGoal = DefaultLeadsGoal
	}
	if m.ProceduresGoal <= 0 {
		m.ProceduresGoal = DefaultProceduresGoal
	}
	if m.PostsGoal <= 0 {
		m.PostsGoal = DefaultPostsGoal
	}
	if m.StoriesGoal <= 0 {
		m.StoriesGoal = DefaultStoriesGoal
	}
}

type CreateMenteeRequest struct {
	UserID         string   `json:"user_id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	PhotoURL       *string  `json:"photo_url"`
	Cohort         string   `json:"cohort"`
	RevenueGoal    *float64 `json:"revenue_goal"`
	LeadsGoal      *int     `json:"leads_goal"`
	ProceduresGoal *int     `json:"procedures_goal"`
	PostsGoal      *int     `json:"posts_goal"`
	StoriesGoal    *int     `json:"stories_goal"`
}

type UpdateMenteeRequest struct {
	ID                  int64    `json:"-"`
	FullName            *string  `json:"full_name"`
	Email               *string  `json:"email"`
	PhotoURL            *string  `json:"photo_url"`
	Cohort              *string  `json:"cohort"`
	RevenueGoal         *float64 `json:"revenue_goal"`
	LeadsGoal           *int     `json:"leads_goal"`
	ProceduresGoal      *int     `json:"procedures_goal"`
	PostsGoal           *int     `json:"posts_goal"`
	StoriesGoal         *int     `json:"stories_goal"`
	Active              *bool    `json:"active"`
	OnboardingCompleted *bool    `json:"onboarding_completed"`
}

// MenteeOverview é o resumo exibido no dashboard do mentorado
type MenteeOverview struct {
	Mentee          *Mentee         `json:"mentee"`
	OnboardingState OnboardingState `json:"onboarding_state"`
	MonthsRecorded  int             `json:"months_recorded"`
	LatestMetric    *MonthlyMetric  `json:"latest_metric"`
	Streak          Streak          `json:"streak"`
	BadgesCount     int             `json:"badges_count"`
}
