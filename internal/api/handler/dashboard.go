package handler

import (
	"bytes"
	"html/template"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/apiErrors"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BarPath é o endpoint chamado pela página a cada hover ou troca de atributo
const BarPath = "/_dashboard/bar"

const dashboardTemplate = "dashboard_page"

type pageData struct {
	Layout      domain.PageLayout
	MapFigure   template.JS
	BarEndpoint string
}

// DashboardPage renderiza a página com o mapa já embutido
func DashboardPage(service dashboard.Dashboard, templates *template.Template) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mapFigure, err := json.Marshal(service.MapFigure())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to encode map figure")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao montar o mapa", nil)
			return
		}

		data := pageData{
			Layout:      service.Layout(),
			MapFigure:   template.JS(mapFigure),
			BarEndpoint: BarPath,
		}

		// Renderiza em buffer para não enviar uma página pela metade
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, dashboardTemplate, data); err != nil {
			logger.WithError(err).Error("dashboard: template execution failed")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao montar a página", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: failed to write page")
		}
	})
}

// BarFigure recalcula o gráfico de barras. "location" vazio significa nenhum bairro sob o ponteiro.
func BarFigure(service dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		feature := query.Get("feature")
		hover := domain.NewHoverTarget(query.Get("location"))

		if len(query["feature"]) > 1 || len(query["location"]) > 1 {
			logger.Warn("dashboard: bar requested with repeated parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros feature e location aceitam um único valor", nil)
			return
		}

		if feature == "" {
			logger.Warn("dashboard: bar requested without feature")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro feature é obrigatório", nil)
			return
		}

		fields := log.Fields{"feature": feature}
		if hover != nil {
			fields["location"] = hover.Location
		}
		logger.WithFields(fields).Debug("dashboard: rendering bar chart")

		figure, err := service.RenderBar(hover, feature)
		if err != nil {
			if errors.Is(err, domain.ErrMissingColumn) {
				logger.WithFields(fields).WithError(err).Warn("dashboard: unknown grouping attribute")
				apiErrors.WriteError(w, apiErrors.ErrMissingColumn, err.Error(), map[string]string{"feature": feature})
				return
			}

			logger.WithFields(fields).WithError(err).Error("dashboard: failed to render bar chart")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o gráfico", nil)
			return
		}

		body, err := json.Marshal(figure)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to encode bar figure")
			apiErrors.WriteError(w, apiErrors.ErrRendering, "Erro ao serializar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			logger.WithError(err).Warn("dashboard: failed to write bar figure")
		}
	})
}
