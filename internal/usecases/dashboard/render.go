package dashboard

import (
	"math"

	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/revenue"
)

const (
	traceBar       = "bar"
	barModeGroup   = "group"
	axisCategory   = "category"
	avgRevenueAxis = "avg_revenue"
)

// Render calcula o gráfico de barras: uma série por snapshot, na ordem recebida.
// Sem hover usa a cidade inteira; com hover filtra o bairro antes de agrupar.
func Render(hover *domain.HoverTarget, feature string, snapshots domain.Snapshots) (*domain.Figure, error) {
	traces := make([]any, 0, len(snapshots))

	for _, snapshot := range snapshots {
		subset := snapshot
		if hover != nil {
			filtered, err := revenue.FilterByNeighbourhood(snapshot, hover.Location)
			if err != nil {
				return nil, err
			}
			subset = filtered
		}

		table, err := revenue.AggregateBy(subset, feature)
		if err != nil {
			return nil, err
		}

		traces = append(traces, BarTraceFrom(table))
	}

	return &domain.Figure{
		Data: traces,
		Layout: domain.FigureLayout{
			BarMode: barModeGroup,
			XAxis:   &domain.Axis{Title: domain.Title{Text: feature}, Type: axisCategory},
			YAxis:   &domain.Axis{Title: domain.Title{Text: avgRevenueAxis}},
		},
	}, nil
}

// BarTraceFrom converte uma tabela agregada em uma série de barras rotulada pelo ano
func BarTraceFrom(table *domain.AggregateRevenueTable) domain.BarTrace {
	return domain.BarTrace{
		Type: traceBar,
		Name: table.Year,
		X:    table.Keys(),
		Y:    nullable(table.Values()),
	}
}

// nullable troca NaN por nil, já que JSON não representa NaN
func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}
