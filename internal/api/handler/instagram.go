package handler

import (
	"net/http"

	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
)

func ConnectInstagram(mentees mentoring.MenteeManager, connector connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		var req domain.InstagramConnectRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		status, err := connector.Connect(r.Context(), mentee.ID, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao conectar instagram")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func DisconnectInstagram(mentees mentoring.MenteeManager, connector connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		if err := connector.Disconnect(r.Context(), mentee.ID); err != nil {
			writeServiceError(w, r, err, "Erro ao desconectar instagram")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

func GetInstagramStatus(mentees mentoring.MenteeManager, connector connecting.Connector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		status, err := connector.Status(r.Context(), mentee.ID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao verificar conexão do instagram")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}
