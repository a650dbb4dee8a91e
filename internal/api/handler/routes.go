package handler

import (
	"net/http"

	"github.com/vfg2006/mentoria-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/gamifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/mentoring"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/mentoria-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/mentoria-dashboard-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Mentees(mentees mentoring.MenteeManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(mentees),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mentees",
			Method:      http.MethodGet,
			Handler:     ListMentees(mentees),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/mentees",
			Method:      http.MethodPost,
			Handler:     CreateMentee(mentees),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/mentees/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMentee(mentees),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Metrics(mentees mentoring.MenteeManager, metrics mentoring.MetricsManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/metrics",
			Method:      http.MethodGet,
			Handler:     ListMyMetrics(mentees, metrics),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/metrics/:year/:month",
			Method:      http.MethodGet,
			Handler:     GetMyMonthMetric(mentees, metrics),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/metrics/:year/:month/previous",
			Method:      http.MethodGet,
			Handler:     GetMyPreviousMonthMetric(mentees, metrics),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/metrics/:year/:month",
			Method:      http.MethodPut,
			Handler:     SubmitMyMetrics(mentees, metrics),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/metrics/:year/:month",
			Method:      http.MethodPatch,
			Handler:     AutoSaveMyMetric(mentees, metrics),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mentees/:id/metrics/evolution",
			Method:      http.MethodGet,
			Handler:     GetMenteeEvolution(metrics),
			Middlewares: middlewares{middleware.AdminOrSelf("id", mentees)},
		},
		{
			Path:        "/v1/mentees/:id/metrics/:year/:month/goals",
			Method:      http.MethodPut,
			Handler:     UpdateMenteeMonthlyGoals(metrics),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/metrics/:year/:month/goals",
			Method:      http.MethodPut,
			Handler:     UpdateGlobalMonthlyGoals(metrics),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Gamification(mentees mentoring.MenteeManager, gamifier gamifying.Gamifier, processor gamifying.MonthProcessor, ranker ranking.Ranker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/badges",
			Method:      http.MethodGet,
			Handler:     ListBadges(gamifier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/badges/init",
			Method:      http.MethodPost,
			Handler:     SeedBadges(gamifier),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me/badges",
			Method:      http.MethodGet,
			Handler:     ListMyBadges(mentees, gamifier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/mentees/:id/badges",
			Method:      http.MethodGet,
			Handler:     ListMenteeBadges(gamifier),
			Middlewares: middlewares{middleware.AdminOrSelf("id", mentees)},
		},
		{
			Path:        "/v1/mentees/:id/badges/check",
			Method:      http.MethodPost,
			Handler:     CheckMenteeBadges(gamifier),
			Middlewares: middlewares{middleware.AdminOrSelf("id", mentees)},
		},
		{
			Path:        "/v1/mentees/:id/streak",
			Method:      http.MethodGet,
			Handler:     GetMenteeStreak(gamifier),
			Middlewares: middlewares{middleware.AdminOrSelf("id", mentees)},
		},
		{
			Path:        "/v1/me/goals",
			Method:      http.MethodGet,
			Handler:     GetMyGoals(mentees, gamifier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetRanking(ranker),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/gamification/process",
			Method:      http.MethodPost,
			Handler:     ProcessGamification(processor),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/gamification/reminders",
			Method:      http.MethodPost,
			Handler:     SendReminders(gamifier),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/mentees/:id/reminder",
			Method:      http.MethodPost,
			Handler:     SendMenteeReminder(gamifier),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Notifications(mentees mentoring.MenteeManager, notifier notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/notifications",
			Method:      http.MethodGet,
			Handler:     ListMyNotifications(mentees, notifier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notifications/:id/read",
			Method:      http.MethodPut,
			Handler:     MarkNotificationRead(mentees, notifier),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Instagram(mentees mentoring.MenteeManager, connector connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/instagram/connect",
			Method:      http.MethodPost,
			Handler:     ConnectInstagram(mentees, connector),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/instagram",
			Method:      http.MethodDelete,
			Handler:     DisconnectInstagram(mentees, connector),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/instagram",
			Method:      http.MethodGet,
			Handler:     GetInstagramStatus(mentees, connector),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
