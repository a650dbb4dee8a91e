package handler

import (
	"net/http"

	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
)

// ListMyMetrics retorna o histórico do mentorado autenticado, do mais recente para o mais antigo
func ListMyMetrics(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		history, err := metrics.GetMetrics(r.Context(), mentee.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar métricas")
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

func GetMenteeEvolution(metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		evolution, err := metrics.GetEvolution(r.Context(), menteeID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar evolução")
			return
		}

		writeJSON(w, http.StatusOK, evolution)
	}
}

func GetMyMonthMetric(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		metric, err := metrics.GetMonthMetric(r.Context(), mentee.ID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar métrica do mês")
			return
		}

		writeJSON(w, http.StatusOK, metric)
	}
}

// GetMyPreviousMonthMetric responde null quando o mês anterior não foi preenchido
func GetMyPreviousMonthMetric(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		metric, err := metrics.GetPreviousMonthMetric(r.Context(), mentee.ID, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar métrica do mês anterior")
			return
		}

		writeJSON(w, http.StatusOK, metric)
	}
}

func SubmitMyMetrics(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		var req domain.SubmitMetricsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		metric, err := metrics.SubmitMetrics(r.Context(), mentee.ID, period, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar métricas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":      metric.ID,
			"success": true,
		})
	}
}

// AutoSaveMyMetric salva um campo por vez enquanto o mentorado preenche o formulário
func AutoSaveMyMetric(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		var req domain.UpdateMetricFieldRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := metrics.UpdateMetricField(r.Context(), mentee.ID, period, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro no salvamento automático")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":      id,
			"success": true,
		})
	}
}

func UpdateMenteeMonthlyGoals(metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menteeID, ok := idParam(w, r, "id")
		if !ok {
			return
		}
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		var goals domain.Goals
		if !decodeJSON(w, r, &goals) {
			return
		}

		if err := metrics.UpdateMonthlyGoals(r.Context(), menteeID, period, goals); err != nil {
			writeServiceError(w, r, err, "Erro ao salvar metas do mês")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func UpdateGlobalMonthlyGoals(metrics mentoring.MetricsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := periodParam(w, r)
		if !ok {
			return
		}

		var goals domain.Goals
		if !decodeJSON(w, r, &goals) {
			return
		}

		affected, err := metrics.UpdateGlobalMonthlyGoals(r.Context(), period, goals)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar metas globais")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"mentees": affected,
		})
	}
}
