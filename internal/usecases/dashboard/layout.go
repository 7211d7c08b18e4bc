package dashboard

import (
	"github.com/vfg2006/toronto-rental-dashboard/internal/config"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
)

const (
	PageTitle      = "Toronto Airbnb"
	FeatureControl = "feature_dropdown"
	MapGraphID     = "map"
	BarGraphID     = "bar"
)

// FeatureOptions são os atributos que podem agrupar o gráfico de barras
var FeatureOptions = []domain.Option{
	{Label: "Room type", Value: domain.ColRoomType},
	{Label: "Number of bedrooms", Value: domain.ColBeds},
}

func NewPageLayout(cfg config.Page) domain.PageLayout {
	return domain.PageLayout{
		Title:      PageTitle,
		Stylesheet: cfg.StylesheetURL,
		PlotlyURL:  cfg.PlotlyURL,
		Dropdown: domain.Dropdown{
			ID:      FeatureControl,
			Options: FeatureOptions,
			Default: domain.ColRoomType,
		},
		Map: domain.Graph{ID: MapGraphID, ClassName: "eight columns"},
		Bar: domain.Graph{ID: BarGraphID, ClassName: "four columns"},
	}
}
