package domain

import "time"

type BadgeCategory string

const (
	CategoryConsistency BadgeCategory = "consistencia"
	CategoryRevenue     BadgeCategory = "faturamento"
	CategoryRanking     BadgeCategory = "ranking"
	CategoryOperational BadgeCategory = "operacional"
	CategorySpecial     BadgeCategory = "especial"
)

type Badge struct {
	ID          int64         `json:"id"`
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Category    BadgeCategory `json:"category"`
	Criterion   Criterion     `json:"criterion"`
	Points      int           `json:"points"`
	CreatedAt   time.Time     `json:"created_at"`
}

// MenteeBadge é uma conquista registrada para um mentorado
type MenteeBadge struct {
	ID       int64     `json:"id"`
	MenteeID int64     `json:"mentee_id"`
	BadgeID  int64     `json:"badge_id"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	EarnedAt time.Time `json:"earned_at"`
	Badge    *Badge    `json:"badge,omitempty"`
}

// BadgeCatalog retorna as badges padrão do programa de mentoria
func BadgeCatalog() []Badge {
	return []Badge{
		// Consistência
		{
			Code:        "primeiro_registro",
			Name:        "Primeiro Registro",
			Description: "Registrou suas primeiras métricas no dashboard",
			Icon:        "🏆",
			Color:       "gold",
			Category:    CategoryConsistency,
			Criterion:   Criterion{Kind: CriterionFirstRecord},
			Points:      10,
		},
		{
			Code:        "consistencia_bronze",
			Name:        "Consistência Bronze",
			Description: "3 meses consecutivos registrando até dia 10",
			Icon:        "⭐",
			Color:       "bronze",
			Category:    CategoryConsistency,
			Criterion:   Criterion{Kind: CriterionStreak, Months: 3},
			Points:      30,
		},
		{
			Code:        "consistencia_prata",
			Name:        "Consistência Prata",
			Description: "6 meses consecutivos registrando até dia 10",
			Icon:        "🥈",
			Color:       "silver",
			Category:    CategoryConsistency,
			Criterion:   Criterion{Kind: CriterionStreak, Months: 6},
			Points:      60,
		},
		{
			Code:        "consistencia_ouro",
			Name:        "Consistência Ouro",
			Description: "12 meses consecutivos registrando até dia 10",
			Icon:        "🥇",
			Color:       "gold",
			Category:    CategoryConsistency,
			Criterion:   Criterion{Kind: CriterionStreak, Months: 12},
			Points:      120,
		},
		{
			Code:        "pontualidade",
			Name:        "Pontualidade",
			Description: "3 meses consecutivos registrando até dia 5",
			Icon:        "⏰",
			Color:       "blue",
			Category:    CategoryConsistency,
			Criterion:   Criterion{Kind: CriterionPunctuality, Months: 3, Day: 5},
			Points:      50,
		},

		// Faturamento
		{
			Code:        "meta_atingida",
			Name:        "Meta Atingida",
			Description: "Atingiu a meta de faturamento do mês",
			Icon:        "💪",
			Color:       "gold",
			Category:    CategoryRevenue,
			Criterion:   Criterion{Kind: CriterionRevenueGoal},
			Points:      20,
		},
		{
			Code:        "crescimento_25",
			Name:        "Crescimento 25%",
			Description: "Cresceu 25% ou mais em relação ao mês anterior",
			Icon:        "📈",
			Color:       "green",
			Category:    CategoryRevenue,
			Criterion:   Criterion{Kind: CriterionGrowth, Percent: 25},
			Points:      40,
		},
		{
			Code:        "crescimento_50",
			Name:        "Crescimento 50%",
			Description: "Cresceu 50% ou mais em relação ao mês anterior",
			Icon:        "🚀",
			Color:       "purple",
			Category:    CategoryRevenue,
			Criterion:   Criterion{Kind: CriterionGrowth, Percent: 50},
			Points:      80,
		},
		{
			Code:        "faturamento_6_digitos",
			Name:        "6 Dígitos",
			Description: "Faturou R$ 100.000+ em um mês",
			Icon:        "💰",
			Color:       "gold",
			Category:    CategoryRevenue,
			Criterion:   Criterion{Kind: CriterionMinRevenue, Value: 100000},
			Points:      100,
		},

		// Ranking
		{
			Code:        "top_3_turma",
			Name:        "Top 3 Turma",
			Description: "Ficou entre os 3 primeiros do ranking mensal",
			Icon:        "🥇",
			Color:       "gold",
			Category:    CategoryRanking,
			Criterion:   Criterion{Kind: CriterionRankingTop, Position: 3},
			Points:      50,
		},
		{
			Code:        "top_1_turma",
			Name:        "Campeão da Turma",
			Description: "Ficou em 1º lugar no ranking mensal",
			Icon:        "👑",
			Color:       "gold",
			Category:    CategoryRanking,
			Criterion:   Criterion{Kind: CriterionRankingTop, Position: 1},
			Points:      100,
		},
		{
			Code:        "acima_media",
			Name:        "Acima da Média",
			Description: "Faturamento acima da média da turma por 3 meses consecutivos",
			Icon:        "🎯",
			Color:       "blue",
			Category:    CategoryRanking,
			Criterion:   Criterion{Kind: CriterionAboveAverage, Months: 3},
			Points:      40,
		},

		// Operacional
		{
			Code:        "gerador_leads",
			Name:        "Gerador de Leads",
			Description: "Gerou 50+ leads em um mês",
			Icon:        "🧲",
			Color:       "blue",
			Category:    CategoryOperational,
			Criterion:   Criterion{Kind: CriterionMinLeads, Value: 50},
			Points:      30,
		},
		{
			Code:        "conversao_master",
			Name:        "Conversão Master",
			Description: "Taxa de conversão acima de 20%",
			Icon:        "✨",
			Color:       "purple",
			Category:    CategoryOperational,
			Criterion:   Criterion{Kind: CriterionConversion, Percent: 20},
			Points:      50,
		},

		// Especial
		{
			Code:        "evolucao_completa",
			Name:        "Evolução Completa",
			Description: "Completou todos os módulos do playbook",
			Icon:        "🎓",
			Color:       "purple",
			Category:    CategorySpecial,
			Criterion:   Criterion{Kind: CriterionPlaybookComplete},
			Points:      80,
		},
		{
			Code:        "jornada_completa",
			Name:        "Jornada Completa",
			Description: "6 meses de mentoria com registro mensal",
			Icon:        "🎆",
			Color:       "gold",
			Category:    CategorySpecial,
			Criterion:   Criterion{Kind: CriterionMentoringMonths, Value: 6},
			Points:      150,
		},
	}
}
