package dashboard

import (
	"encoding/json"

	"github.com/vfg2006/toronto-rental-dashboard/internal/config"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
)

const (
	traceChoropleth  = "choroplethmapbox"
	mapHoverTemplate = "<b>%{location}</b><br>avg_revenue=%{z:,.2f}<br>area=%{customdata:.2f} km²<extra></extra>"
)

type MapConfig struct {
	Style      string
	Zoom       float64
	CenterLat  float64
	CenterLon  float64
	Opacity    float64
	ColorScale string
}

func MapConfigFrom(cfg config.Map) MapConfig {
	return MapConfig{
		Style:      cfg.Style,
		Zoom:       cfg.Zoom,
		CenterLat:  cfg.CenterLat,
		CenterLon:  cfg.CenterLon,
		Opacity:    cfg.Opacity,
		ColorScale: cfg.ColorScale,
	}
}

// BuildMap monta o mapa coroplético: cada bairro é colorido pela receita média
func BuildMap(table *domain.AggregateRevenueTable, boundaries *domain.Boundaries, cfg MapConfig) *domain.Figure {
	locations := table.Keys()

	areas := make([]float64, len(locations))
	for i, location := range locations {
		areas[i], _ = boundaries.Area(location)
	}

	trace := domain.ChoroplethTrace{
		Type:          traceChoropleth,
		Locations:     locations,
		Z:             nullable(table.Values()),
		CustomData:    areas,
		ColorScale:    cfg.ColorScale,
		ColorBar:      &domain.ColorBar{Title: domain.Title{Text: avgRevenueAxis}},
		Marker:        &domain.Marker{Opacity: cfg.Opacity},
		HoverTemplate: mapHoverTemplate,
	}
	if boundaries != nil {
		trace.GeoJSON = json.RawMessage(boundaries.Document)
		trace.FeatureIDKey = boundaries.FeatureIDKey
	}

	return &domain.Figure{
		Data: []any{trace},
		Layout: domain.FigureLayout{
			Mapbox: &domain.Mapbox{
				Style:  cfg.Style,
				Zoom:   cfg.Zoom,
				Center: domain.LatLng{Lat: cfg.CenterLat, Lon: cfg.CenterLon},
			},
			Margin: &domain.Margin{R: 0, T: 0.5, L: 0, B: 0},
		},
	}
}
