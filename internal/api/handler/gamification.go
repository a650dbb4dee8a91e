package handler

import (
	"net/http"

	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking"
)

func ListBadges(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		badges, err := gamifier.ListBadges(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar badges")
			return
		}

		writeJSON(w, http.StatusOK, badges)
	}
}

// SeedBadges grava o catálogo de badges. Rodar de novo não duplica.
func SeedBadges(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inserted, err := gamifier.SeedCatalog(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao inicializar catálogo de badges")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"inserted": inserted,
		})
	}
}

func ListMyBadges(mentees mentoring.MenteeManager, gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		badges, err := gamifier.ListMenteeBadges(r.Context(), mentee.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar badges do mentorado")
			return
		}

		writeJSON(w, http.StatusOK, badges)
	}
}

func ListMenteeBadges(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		badges, err := gamifier.ListMenteeBadges(r.Context(), menteeID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar badges do mentorado")
			return
		}

		writeJSON(w, http.StatusOK, badges)
	}
}

// CheckMenteeBadges avalia o mês informado na query, ou o mês atual
func CheckMenteeBadges(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}
		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		awarded := gamifier.CheckAndAwardBadges(r.Context(), menteeID, period)

		writeJSON(w, http.StatusOK, map[string]any{
			"period":     period,
			"new_badges": awarded,
		})
	}
}

func GetMenteeStreak(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, gamifier.GetStreak(r.Context(), menteeID))
	}
}

func GetMyGoals(mentees mentoring.MenteeManager, gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		goals, err := gamifier.GetProgressiveGoals(r.Context(), mentee.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas progressivas")
			return
		}

		writeJSON(w, http.StatusOK, goals)
	}
}

func GetRanking(ranker ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		result, err := ranker.GetRanking(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

type processRequest struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	MenteeID *int64 `json:"mentee_id"`
}

// ProcessGamification fecha um mês. Com mentee_id processa só o mentorado.
func ProcessGamification(processor gamifying.MonthProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		period := domain.Period{Year: req.Year, Month: req.Month}
		result, err := processor.ProcessMonth(r.Context(), period, req.MenteeID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao processar gamificação")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func SendReminders(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := gamifier.SendMetricsReminders(r.Context(), nowFunc())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar lembretes")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func SendMenteeReminder(gamifier gamifying.Gamifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		result, err := gamifier.SendReminderNow(r.Context(), menteeID, nowFunc())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar lembrete")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
