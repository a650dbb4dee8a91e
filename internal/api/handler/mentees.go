package handler

import (
	"net/http"

	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
)

// GetMe retorna o resumo do dashboard do mentorado autenticado
func GetMe(mentees mentoring.MenteeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		overview, err := mentees.GetOverview(r.Context(), mentee)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar resumo do mentorado")
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

func ListMentees(mentees mentoring.MenteeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := mentees.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar mentorados")
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func CreateMentee(mentees mentoring.MenteeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateMenteeRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		mentee, err := mentees.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar mentorado")
			return
		}

		writeJSON(w, http.StatusCreated, mentee)
	}
}

func UpdateMentee(mentees mentoring.MenteeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateMenteeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = id

		mentee, err := mentees.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar mentorado")
			return
		}

		writeJSON(w, http.StatusOK, mentee)
	}
}
