package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/pkg/log"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const propertiesPrefix = "properties."

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	ID         any            `json:"id"`
	Properties map[string]any `json:"properties"`
	Geometry   *geometry      `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadBoundaries lê o GeoJSON de bairros. featureIDKey segue a convenção do
// plotly ("properties.neighbourhood").
func LoadBoundaries(path string, featureIDKey string) (*domain.Boundaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(domain.NewFileError(path, err.Error()), "dataset: reading boundaries")
	}

	boundaries, err := ParseBoundaries(path, data, featureIDKey)
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"path":           path,
		"neighbourhoods": len(boundaries.Neighbourhoods),
	}).Infof("dataset: boundaries loaded with %d neighbourhoods", len(boundaries.Neighbourhoods))

	return boundaries, nil
}

// ParseBoundaries valida o documento e calcula a área de cada bairro
func ParseBoundaries(path string, data []byte, featureIDKey string) (*domain.Boundaries, error) {
	var doc featureCollection
	if err := jsonAPI.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(domain.NewFormatError(path, err.Error()), "dataset: decoding boundaries")
	}

	if doc.Type != "FeatureCollection" {
		return nil, domain.NewFormatError(path, fmt.Sprintf("expected FeatureCollection, got %q", doc.Type))
	}

	boundaries := &domain.Boundaries{
		Document:       data,
		FeatureIDKey:   featureIDKey,
		Neighbourhoods: make([]domain.NeighbourhoodBoundary, 0, len(doc.Features)),
	}

	for i, f := range doc.Features {
		name, ok := f.lookup(featureIDKey)
		if !ok {
			log.L.WithFields(log.Fields{
				"path":    path,
				"feature": i,
				"key":     featureIDKey,
			}).Warn("dataset: boundary feature without id key, skipping")
			continue
		}

		area, err := f.Geometry.areaKm2()
		if err != nil {
			return nil, errors.Wrap(domain.NewFormatError(path, fmt.Sprintf("feature %q: %s", name, err)), "dataset: decoding geometry")
		}

		boundaries.Neighbourhoods = append(boundaries.Neighbourhoods, domain.NeighbourhoodBoundary{
			Name:    name,
			AreaKm2: area,
		})
	}

	return boundaries, nil
}

// lookup resolve "id" ou um caminho "properties.a.b" dentro da feature
func (f feature) lookup(key string) (string, bool) {
	if key == "id" {
		if f.ID == nil {
			return "", false
		}
		return fmt.Sprint(f.ID), true
	}

	if !strings.HasPrefix(key, propertiesPrefix) {
		return "", false
	}

	var current any = f.Properties
	for _, part := range strings.Split(strings.TrimPrefix(key, propertiesPrefix), ".") {
		values, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = values[part]; !ok || current == nil {
			return "", false
		}
	}

	return fmt.Sprint(current), true
}
