package domain

import "time"

// RankingEntry é a posição de um mentorado no ranking mensal
type RankingEntry struct {
	ID          int64     `json:"id"`
	MenteeID    int64     `json:"mentee_id"`
	MenteeName  string    `json:"mentee_name,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Cohort      string    `json:"cohort"`
	Position    int       `json:"position"`
	TotalScore  int       `json:"total_score"`
	BonusPoints int       `json:"bonus_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoreBreakdown detalha os componentes da pontuação de um mentorado
type ScoreBreakdown struct {
	MenteeID    int64   `json:"mentee_id"`
	Revenue     float64 `json:"-"`
	RevenuePart int     `json:"revenue_points"`
	ContentPart int     `json:"content_points"`
	OpsPart     int     `json:"operational_points"`
	Bonus       int     `json:"bonus_points"`
	Total       int     `json:"total"`
}

type RankingResponse struct {
	Period  Period          `json:"period"`
	Ranking []*RankingEntry `json:"ranking"`
}
