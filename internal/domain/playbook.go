package domain

// PlaybookProgress é o progresso do mentorado nos itens do playbook
type PlaybookProgress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
