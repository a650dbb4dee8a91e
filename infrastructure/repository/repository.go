// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=mentee.go -destination=mocks/mock_mentee.go -package=mocks
//go:generate mockgen -source=monthly_metric.go -destination=mocks/mock_monthly_metric.go -package=mocks
//go:generate mockgen -source=badge.go -destination=mocks/mock_badge.go -package=mocks
//go:generate mockgen -source=mentee_badge.go -destination=mocks/mock_mentee_badge.go -package=mocks
//go:generate mockgen -source=ranking.go -destination=mocks/mock_ranking.go -package=mocks
//go:generate mockgen -source=progressive_goal.go -destination=mocks/mock_progressive_goal.go -package=mocks
//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks
//go:generate mockgen -source=playbook.go -destination=mocks/mock_playbook.go -package=mocks
//go:generate mockgen -source=instagram_token.go -destination=mocks/mock_instagram_token.go -package=mocks

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

const (
	menteesTable          = "mentees"
	monthlyMetricsTable   = "monthly_metrics"
	badgesTable           = "badges"
	menteeBadgesTable     = "mentee_badges"
	monthlyRankingTable   = "monthly_ranking"
	progressiveGoalsTable = "progressive_goals"
	notificationsTable    = "notifications"
	playbookItemsTable    = "playbook_items"
	playbookProgressTable = "playbook_progress"
	instagramTokensTable  = "instagram_tokens"
)
