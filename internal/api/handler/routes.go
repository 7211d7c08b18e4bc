package handler

import (
	"html/template"
	"net/http"

	"github.com/vfg2006/toronto-rental-dashboard/internal/api/handler/router"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/dashboard"
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

func Dashboard(service dashboard.Dashboard, templates *template.Template) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, templates),
		},
		{
			Path:    BarPath,
			Method:  http.MethodGet,
			Handler: BarFigure(service),
		},
	}
}
