package domain

import "time"

type NotificationType string

const (
	NotificationMetricsReminder NotificationType = "lembrete_metricas"
	NotificationGoalAlert       NotificationType = "alerta_meta"
	NotificationAchievement     NotificationType = "conquista"
	NotificationRanking         NotificationType = "ranking"
)

type Notification struct {
	ID          int64            `json:"id"`
	MenteeID    int64            `json:"mentee_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	SentByEmail bool             `json:"sent_by_email"`
	CreatedAt   time.Time        `json:"created_at"`
}

// DeliveryResult informa o resultado de cada canal de envio
type DeliveryResult struct {
	NotificationID int64 `json:"notification_id"`
	InApp          bool  `json:"in_app"`
	Email          bool  `json:"email"`
}

// ReminderSummary resume um lote de lembretes de métricas
type ReminderSummary struct {
	Period  Period `json:"period"`
	Total   int    `json:"total"`
	Sent    int    `json:"sent"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}
