package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
)

const featureIDKey = "properties.neighbourhood"

// Quadrado de 0.01° x 0.01° no equador, cerca de 1.236 km²
const boundariesDocument = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"neighbourhood": "Annex", "neighbourhood_group": null},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [0.01, 0], [0.01, 0.01], [0, 0.01], [0, 0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"neighbourhood": "Islands"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[0, 0], [0, 0.01], [0.01, 0.01], [0.01, 0], [0, 0]]],
          [[[1, 0], [1.01, 0], [1.01, 0.01], [1, 0.01], [1, 0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "sem chave"},
      "geometry": null
    }
  ]
}`

func TestParseBoundaries(t *testing.T) {
	boundaries, err := ParseBoundaries("neighbourhoods.geojson", []byte(boundariesDocument), featureIDKey)
	require.NoError(t, err)

	assert.Equal(t, featureIDKey, boundaries.FeatureIDKey)
	assert.JSONEq(t, boundariesDocument, string(boundaries.Document))
	require.Len(t, boundaries.Neighbourhoods, 2)

	annex, ok := boundaries.Area("Annex")
	require.True(t, ok)
	assert.InDelta(t, 1.236, annex, 0.01)

	// Orientação do anel não muda a área
	islands, ok := boundaries.Area("Islands")
	require.True(t, ok)
	assert.InDelta(t, 2*1.236, islands, 0.02)

	_, ok = boundaries.Area("Rosedale")
	assert.False(t, ok)
}

func TestParseBoundaries_NestedKey(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
		{"type":"Feature","id":7,"properties":{"meta":{"code":"T07"}},"geometry":null}
	]}`

	nested, err := ParseBoundaries("", []byte(doc), "properties.meta.code")
	require.NoError(t, err)
	require.Len(t, nested.Neighbourhoods, 1)
	assert.Equal(t, "T07", nested.Neighbourhoods[0].Name)

	byID, err := ParseBoundaries("", []byte(doc), "id")
	require.NoError(t, err)
	require.Len(t, byID.Neighbourhoods, 1)
	assert.Equal(t, "7", byID.Neighbourhoods[0].Name)
}

func TestParseBoundaries_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "json inválido", doc: `{"type": "FeatureCollection", "features": [`},
		{name: "tipo de documento errado", doc: `{"type": "Feature", "properties": {}}`},
		{name: "coordenadas inválidas", doc: `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"neighbourhood":"A"},"geometry":{"type":"Polygon","coordinates":"x"}}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoundaries("neighbourhoods.geojson", []byte(tt.doc), featureIDKey)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestLoadBoundaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neighbourhoods.geojson")
	require.NoError(t, os.WriteFile(path, []byte(boundariesDocument), 0o600))

	boundaries, err := LoadBoundaries(path, featureIDKey)
	require.NoError(t, err)
	assert.Len(t, boundaries.Neighbourhoods, 2)

	_, err = LoadBoundaries(filepath.Join(t.TempDir(), "missing.geojson"), featureIDKey)
	assert.ErrorIs(t, err, domain.ErrFile)
}

func TestPolygonArea_Hole(t *testing.T) {
	outer := [][]float64{{0, 0}, {0.02, 0}, {0.02, 0.02}, {0, 0.02}, {0, 0}}
	hole := [][]float64{{0.005, 0.005}, {0.015, 0.005}, {0.015, 0.015}, {0.005, 0.015}, {0.005, 0.005}}

	full := PolygonArea([][][]float64{outer})
	withHole := PolygonArea([][][]float64{outer, hole})

	assert.InDelta(t, 4*1.236, full, 0.05)
	assert.InDelta(t, full-1.236, withHole, 0.05)
	assert.Zero(t, PolygonArea(nil))
}
