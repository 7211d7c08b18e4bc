// Package dashboard monta a página, o mapa estático e o gráfico de barras interativo
package dashboard

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/toronto-rental-dashboard/internal/config"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/log"
)

// Dashboard define as operações expostas pela camada HTTP
type Dashboard interface {
	// Layout descreve a página (título, seletor e regiões dos gráficos)
	Layout() domain.PageLayout

	// MapFigure devolve o mapa coroplético calculado na inicialização
	MapFigure() *domain.Figure

	// RenderBar recalcula o gráfico de barras para o bairro sob o ponteiro e o atributo escolhido
	RenderBar(hover *domain.HoverTarget, feature string) (*domain.Figure, error)
}

// Service guarda os snapshots carregados na inicialização. Nada é alterado
// depois de NewService, então chamadas concorrentes não precisam de lock.
type Service struct {
	snapshots domain.Snapshots
	layout    domain.PageLayout
	mapFigure *domain.Figure
}

// NewService recebe os snapshots já com a coluna revenue e monta o mapa uma única vez
func NewService(cfg *config.Config, snapshots domain.Snapshots, boundaries *domain.Boundaries) (Dashboard, error) {
	latest := snapshots.Latest()
	if latest == nil {
		return nil, errors.New("dashboard: no snapshots loaded")
	}

	byNeighbourhood, err := revenue.AggregateBy(latest, domain.ColNeighbourhood)
	if err != nil {
		return nil, errors.Wrapf(err, "dashboard: aggregating %s by neighbourhood", latest.Year)
	}

	mapFigure := BuildMap(byNeighbourhood, boundaries, MapConfigFrom(cfg.Map))

	log.L.WithFields(log.Fields{
		"year":           latest.Year,
		"neighbourhoods": len(byNeighbourhood.Rows),
	}).Info("dashboard: choropleth map built")

	return &Service{
		snapshots: snapshots,
		layout:    NewPageLayout(cfg.Page),
		mapFigure: mapFigure,
	}, nil
}

func (s *Service) Layout() domain.PageLayout {
	return s.layout
}

func (s *Service) MapFigure() *domain.Figure {
	return s.mapFigure
}

func (s *Service) RenderBar(hover *domain.HoverTarget, feature string) (*domain.Figure, error) {
	return Render(hover, feature, s.snapshots)
}
