package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
)

// ListMyNotifications aceita ?unread=true para trazer só as não lidas
func ListMyNotifications(mentees mentoring.MenteeManager, notifier notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		onlyUnread, _ := strconv.ParseBool(r.URL.Query().Get("unread"))

		notifications, err := notifier.List(r.Context(), mentee.ID, onlyUnread)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar notificações")
			return
		}

		writeJSON(w, http.StatusOK, notifications)
	}
}

func MarkNotificationRead(mentees mentoring.MenteeManager, notifier notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationID, ok := idParam(w, r, "id")
		if !ok {
			return
		}
		mentee, ok := currentMentee(w, r, mentees)
		if !ok {
			return
		}

		if err := notifier.MarkRead(r.Context(), mentee.ID, notificationID); err != nil {
			writeServiceError(w, r, err, "Erro ao marcar notificação como lida")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
