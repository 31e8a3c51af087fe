package handler

import (
	"net/http"

	"github.com/salespulse/salespulse-api/internal/api/handler/router"
	"github.com/salespulse/salespulse-api/internal/usecases/authenticating"
	"github.com/salespulse/salespulse-api/internal/usecases/dashboarding"
	"github.com/salespulse/salespulse-api/internal/usecases/evaluating"
	"github.com/salespulse/salespulse-api/internal/usecases/teaming"
	"github.com/salespulse/salespulse-api/internal/usecases/templating"
	"github.com/salespulse/salespulse-api/internal/usecases/tracking"
	"github.com/salespulse/salespulse-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Teams(service teaming.Teamer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/teams",
			Method:      http.MethodPost,
			Handler:     CreateTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams",
			Method:      http.MethodGet,
			Handler:     ListTeams(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id",
			Method:      http.MethodGet,
			Handler:     GetTeam(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/members",
			Method:      http.MethodGet,
			Handler:     ListTeamMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/members",
			Method:      http.MethodPost,
			Handler:     AddTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/members/:user_id",
			Method:      http.MethodDelete,
			Handler:     RemoveTeamMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func DailyLogs(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/teams/:id/logs",
			Method:      http.MethodPut,
			Handler:     UpsertDailyLog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/teams/:id/logs",
			Method:      http.MethodGet,
			Handler:     ListTeamDailyLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activity-fields",
			Method:      http.MethodGet,
			Handler:     ListActivityFields(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboards(service dashboarding.Dashboarder, evaluator evaluating.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodPost,
			Handler:     CreateDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodGet,
			Handler:     ListDashboards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id/config",
			Method:      http.MethodPut,
			Handler:     ReplaceDashboardConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id/values",
			Method:      http.MethodGet,
			Handler:     GetDashboardValues(evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboards/:id/metrics/:metric_id/series",
			Method:      http.MethodGet,
			Handler:     GetMetricSeries(evaluator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Templates(service templating.Templater) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/templates",
			Method:      http.MethodPost,
			Handler:     CreateTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates",
			Method:      http.MethodGet,
			Handler:     ListTemplates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/categories",
			Method:      http.MethodGet,
			Handler:     ListTemplateCategories(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodGet,
			Handler:     GetTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id/compatibility",
			Method:      http.MethodPost,
			Handler:     CheckTemplateCompatibility(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/templates/:id/clone",
			Method:      http.MethodPost,
			Handler:     CloneTemplate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
