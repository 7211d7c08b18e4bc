// Package dataset carrega os snapshots de anúncios e o documento de fronteiras dos bairros
package dataset

import (
	"compress/gzip"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/log"
)

// priceSymbols remove o símbolo de moeda e o separador de milhar
var priceSymbols = regexp.MustCompile(`[\$,]`)

// Source identifica o arquivo de um snapshot
type Source struct {
	Year string
	Path string
}

type Options struct {
	// Coluna do CSV que contém o nome do bairro; exposta como "neighbourhood"
	NeighbourhoodColumn string
}

func (o Options) neighbourhoodColumn() string {
	if o.NeighbourhoodColumn == "" {
		return domain.ColNeighbourhood
	}
	return o.NeighbourhoodColumn
}

// LoadSnapshots carrega os snapshots na ordem das fontes
func LoadSnapshots(sources []Source, opts Options) (domain.Snapshots, error) {
	snapshots := make(domain.Snapshots, 0, len(sources))
	for _, src := range sources {
		snapshot, err := LoadSnapshot(src, opts)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// LoadSnapshot lê um CSV compactado com gzip e devolve o snapshot com o preço já numérico
func LoadSnapshot(src Source, opts Options) (*domain.Snapshot, error) {
	logger := log.L.WithFields(log.Fields{
		"year": src.Year,
		"path": src.Path,
	})

	file, err := os.Open(src.Path)
	if err != nil {
		return nil, errors.Wrapf(domain.NewFileError(src.Path, err.Error()), "dataset: opening %s snapshot", src.Year)
	}
	defer file.Close()

	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(domain.NewFileError(src.Path, err.Error()), "dataset: decompressing %s snapshot", src.Year)
	}
	defer reader.Close()

	frame := dataframe.ReadCSV(reader, loadOptions(opts)...)
	if frame.Err != nil {
		return nil, errors.Wrapf(domain.NewFileError(src.Path, frame.Err.Error()), "dataset: parsing %s snapshot", src.Year)
	}

	snapshot, err := prepare(src.Year, frame, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: preparing %s snapshot from %s", src.Year, src.Path)
	}

	logger.Infof("dataset: snapshot loaded with %d listings", snapshot.Len())
	return snapshot, nil
}

// ParseRecords monta um snapshot a partir de registros já lidos (primeira linha é o cabeçalho)
func ParseRecords(year string, records [][]string, opts Options) (*domain.Snapshot, error) {
	frame := dataframe.LoadRecords(records, loadOptions(opts)...)
	if frame.Err != nil {
		return nil, errors.Wrapf(domain.NewFileError("", frame.Err.Error()), "dataset: parsing %s records", year)
	}
	return prepare(year, frame, opts)
}

func loadOptions(opts Options) []dataframe.LoadOption {
	types := map[string]series.Type{
		domain.ColRoomType:       series.String,
		domain.ColBeds:           series.String,
		domain.ColPrice:          series.String,
		domain.ColAvailability30: series.Float,
	}
	types[opts.neighbourhoodColumn()] = series.String

	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	}
}

func prepare(year string, frame dataframe.DataFrame, opts Options) (*domain.Snapshot, error) {
	frame, err := renameNeighbourhood(frame, opts.neighbourhoodColumn())
	if err != nil {
		return nil, err
	}

	names := frame.Names()
	for _, col := range domain.RequiredColumns {
		if !contains(names, col) {
			return nil, domain.NewMissingColumnError(col)
		}
	}

	prices, err := CleanPrices(frame.Col(domain.ColPrice))
	if err != nil {
		return nil, err
	}

	frame = frame.Mutate(series.New(prices, series.Float, domain.ColPrice))
	if frame.Err != nil {
		return nil, errors.Wrap(frame.Err, "dataset: replacing price column")
	}

	return domain.NewSnapshot(year, frame), nil
}

// renameNeighbourhood expõe a coluna de bairro configurada como "neighbourhood".
// Uma coluna "neighbourhood" pré-existente (texto livre) é descartada.
func renameNeighbourhood(frame dataframe.DataFrame, source string) (dataframe.DataFrame, error) {
	if source == domain.ColNeighbourhood {
		return frame, nil
	}

	names := frame.Names()
	if !contains(names, source) {
		return frame, domain.NewMissingColumnError(source)
	}

	if contains(names, domain.ColNeighbourhood) {
		frame = frame.Drop(domain.ColNeighbourhood)
	}

	frame = frame.Rename(domain.ColNeighbourhood, source)
	if frame.Err != nil {
		return frame, errors.Wrapf(frame.Err, "dataset: renaming %s", source)
	}
	return frame, nil
}

// CleanPrices converte a coluna de preço ("$1,250.00") em float.
// Valores ausentes viram NaN; valores que continuam inválidos após a limpeza são erro.
func CleanPrices(prices series.Series) ([]float64, error) {
	raw := prices.Records()
	missing := prices.IsNaN()

	cleaned := make([]float64, len(raw))
	for i, value := range raw {
		if missing[i] {
			cleaned[i] = math.NaN()
			continue
		}

		stripped := strings.TrimSpace(priceSymbols.ReplaceAllString(value, ""))
		if stripped == "" {
			cleaned[i] = math.NaN()
			continue
		}

		price, err := decimal.NewFromString(stripped)
		if err != nil {
			return nil, domain.NewDataFormatError(domain.ColPrice, fmt.Sprintf("row %d: %q", i, value))
		}
		cleaned[i] = price.InexactFloat64()
	}

	return cleaned, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
