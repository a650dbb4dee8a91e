package domain

// ProcessResult resume o processamento de gamificação de um mês
type ProcessResult struct {
	Period        Period `json:"period"`
	MenteeID      *int64 `json:"mentee_id,omitempty"`
	BadgesAwarded int    `json:"badges_awarded"`
	GoalsUpdated  int    `json:"goals_updated"`
	RankedMentees int    `json:"ranked_mentees"`
	AlertsSent    int    `json:"alerts_sent"`
}
