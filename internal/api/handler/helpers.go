package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mentoria-dashboard-api/internal/domain"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/log"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// writeServiceError converte os erros tipados dos casos de uso na resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithError(err).Warn(fallback)

	var (
		metricsErr      *mentoring.MetricsError
		gamificationErr *gamifying.GamificationError
		rankingErr      *ranking.RankingError
		notificationErr *notifying.NotificationError
		connectionErr   *connecting.ConnectionError
		authErr         *authenticating.AuthError
	)

	switch {
	case errors.As(err, &metricsErr):
		apiErrors.WriteError(w, metricsErr.Code, metricsErr.Error(), nil)
	case errors.As(err, &gamificationErr):
		apiErrors.WriteError(w, gamificationErr.Code, gamificationErr.Error(), nil)
	case errors.As(err, &rankingErr):
		apiErrors.WriteError(w, rankingErr.Code, rankingErr.Error(), nil)
	case errors.As(err, &notificationErr):
		apiErrors.WriteError(w, notificationErr.Code, notificationErr.Error(), nil)
	case errors.As(err, &connectionErr):
		apiErrors.WriteError(w, connectionErr.Code, connectionErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.Is(err, domain.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro "+name+" não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return id, true
}

// periodParam lê :year e :month da rota
func periodParam(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	params := httprouter.ParamsFromContext(r.Context())
	return parsePeriod(w, params.ByName("year"), params.ByName("month"))
}

// periodQuery lê year e month da query string, usando o mês atual quando ausentes
func periodQuery(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	query := r.URL.Query()
	if query.Get("year") == "" && query.Get("month") == "" {
		return domain.PeriodOf(nowFunc()), true
	}
	return parsePeriod(w, query.Get("year"), query.Get("month"))
}

func parsePeriod(w http.ResponseWriter, rawYear, rawMonth string) (domain.Period, bool) {
	year, errYear := strconv.Atoi(rawYear)
	month, errMonth := strconv.Atoi(rawMonth)
	if errYear != nil || errMonth != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano e mês devem ser numéricos", nil)
		return domain.Period{}, false
	}

	period, err := domain.NewPeriod(year, month)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
		return domain.Period{}, false
	}
	return period, true
}

// currentMentee resolve o mentorado do usuário autenticado
func currentMentee(w http.ResponseWriter, r *http.Request, mentees mentoring.MenteeManager) (*domain.Mentee, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	mentee, err := mentees.ResolveMentee(r.Context(), claims)
	if err != nil {
		writeServiceError(w, r, err, "Erro ao identificar mentorado")
		return nil, false
	}
	return mentee, true
}
