package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(time.Now()),
		},
	}
}

func Metrics(path string, handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, guard middleware.RoleGuard) []router.Route {
	allRoles := []func(http.Handler) http.Handler{guard.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/dashboard/channels",
			Method:      http.MethodGet,
			Handler:     GetChannelSummary(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/correlation",
			Method:      http.MethodGet,
			Handler:     GetCorrelation(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/waterfall",
			Method:      http.MethodGet,
			Handler:     GetWaterfall(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/saturation/:channel",
			Method:      http.MethodGet,
			Handler:     GetSaturation(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrend(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/year-over-year",
			Method:      http.MethodGet,
			Handler:     GetYearOverYear(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/ab-tests",
			Method:      http.MethodGet,
			Handler:     GetABTests(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/export",
			Method:      http.MethodGet,
			Handler:     ExportDashboard(service),
			Middlewares: allRoles,
		},
	}
}

func Snapshots(service dashboarding.Dashboarder, guard middleware.RoleGuard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{guard.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/:id",
			Method:      http.MethodGet,
			Handler:     GetSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{guard.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices, guard middleware.RoleGuard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{guard.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{guard.AdminOnly()},
		},
	}
}
