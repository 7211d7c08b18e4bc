// Package revenue calcula a receita estimada dos anúncios e as médias por grupo
package revenue

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/utils"
)

// ComputeRevenue devolve o snapshot com a coluna revenue = price * (30 - availability_30).
// Disponibilidade fora de [0, 30] não é tratada: a receita negativa é mantida.
func ComputeRevenue(snapshot *domain.Snapshot) (*domain.Snapshot, error) {
	for _, col := range []string{domain.ColPrice, domain.ColAvailability30} {
		if !snapshot.HasColumn(col) {
			return nil, domain.NewMissingColumnError(col)
		}
	}

	frame := snapshot.Frame()
	prices := frame.Col(domain.ColPrice).Float()
	availability := frame.Col(domain.ColAvailability30).Float()

	revenue := make([]float64, len(prices))
	for i := range prices {
		revenue[i] = prices[i] * (domain.DaysInWindow - availability[i])
	}

	frame = frame.Mutate(series.New(revenue, series.Float, domain.ColRevenue))
	if frame.Err != nil {
		return nil, errors.Wrapf(frame.Err, "revenue: adding revenue column to %s", snapshot.Year)
	}

	return domain.NewSnapshot(snapshot.Year, frame), nil
}

// ComputeAll aplica ComputeRevenue a todos os snapshots, mantendo a ordem
func ComputeAll(snapshots domain.Snapshots) (domain.Snapshots, error) {
	result := make(domain.Snapshots, 0, len(snapshots))
	for _, snapshot := range snapshots {
		withRevenue, err := ComputeRevenue(snapshot)
		if err != nil {
			return nil, err
		}
		result = append(result, withRevenue)
	}
	return result, nil
}

type group struct {
	sum   float64
	count int
}

// AggregateBy agrupa o snapshot pela coluna groupKey e calcula a receita média
// de cada grupo, arredondada em 2 casas. Chaves ausentes são descartadas e
// receitas ausentes não entram na média.
func AggregateBy(snapshot *domain.Snapshot, groupKey string) (*domain.AggregateRevenueTable, error) {
	if !snapshot.HasColumn(groupKey) {
		return nil, domain.NewMissingColumnError(groupKey)
	}
	if !snapshot.HasColumn(domain.ColRevenue) {
		return nil, domain.NewMissingColumnError(domain.ColRevenue)
	}

	frame := snapshot.Frame()
	keyColumn := frame.Col(groupKey)
	keys := keyColumn.Records()
	missing := keyColumn.IsNaN()
	revenue := frame.Col(domain.ColRevenue).Float()

	groups := make(map[string]*group)
	order := make([]string, 0)
	for i, key := range keys {
		if missing[i] || key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}

		if math.IsNaN(revenue[i]) {
			continue
		}
		g.sum += revenue[i]
		g.count++
	}

	sortKeys(order)

	table := &domain.AggregateRevenueTable{
		Year:     snapshot.Year,
		GroupKey: groupKey,
		Rows:     make([]domain.RevenueRow, 0, len(order)),
	}
	for _, key := range order {
		g := groups[key]
		avg := math.NaN()
		if g.count > 0 {
			avg = utils.RoundWithTwoDecimalPlace(g.sum / float64(g.count))
		}
		table.Rows = append(table.Rows, domain.RevenueRow{Key: key, AvgRevenue: avg})
	}

	return table, nil
}

// FilterByNeighbourhood devolve apenas os anúncios do bairro informado.
// Nenhuma linha encontrada resulta em um snapshot vazio com as mesmas colunas.
func FilterByNeighbourhood(snapshot *domain.Snapshot, neighbourhood string) (*domain.Snapshot, error) {
	if !snapshot.HasColumn(domain.ColNeighbourhood) {
		return nil, domain.NewMissingColumnError(domain.ColNeighbourhood)
	}

	frame := snapshot.Frame()
	column := frame.Col(domain.ColNeighbourhood)
	missing := column.IsNaN()

	matches := 0
	for i, value := range column.Records() {
		if !missing[i] && value == neighbourhood {
			matches++
		}
	}

	if matches == 0 {
		return domain.NewSnapshot(snapshot.Year, emptyLike(frame)), nil
	}

	filtered := frame.Filter(dataframe.F{
		Colname:    domain.ColNeighbourhood,
		Comparator: series.Eq,
		Comparando: neighbourhood,
	})
	if filtered.Err != nil {
		return nil, errors.Wrapf(filtered.Err, "revenue: filtering %s by neighbourhood %q", snapshot.Year, neighbourhood)
	}

	return domain.NewSnapshot(snapshot.Year, filtered), nil
}

func emptyLike(frame dataframe.DataFrame) dataframe.DataFrame {
	columns := make([]series.Series, 0, frame.Ncol())
	for _, name := range frame.Names() {
		columns = append(columns, series.New([]string{}, frame.Col(name).Type(), name))
	}
	return dataframe.New(columns...)
}

// sortKeys ordena numericamente quando as chaves são números ("2.0" < "10.0").
// Chaves numéricas vêm antes das textuais.
func sortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, errA := strconv.ParseFloat(keys[i], 64)
		b, errB := strconv.ParseFloat(keys[j], 64)
		switch {
		case errA == nil && errB == nil:
			if a != b {
				return a < b
			}
			return keys[i] < keys[j]
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}
