package handler

import (
	"net/http"
	"time"
)

var nowFunc = time.Now

func HealthcheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"time":   nowFunc().Format(time.RFC3339),
		})
	}
}
