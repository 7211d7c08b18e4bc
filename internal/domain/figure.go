package domain

import "encoding/json"

// Figure descreve um gráfico no formato do plotly.js ({data, layout})
type Figure struct {
	Data   []any        `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// BarTrace é uma série de barras
type BarTrace struct {
	Type string     `json:"type"`
	Name string     `json:"name"`
	X    []string   `json:"x"`
	Y    []*float64 `json:"y"` // nil vira null (lacuna no gráfico)
}

// ChoroplethTrace é a camada do mapa coroplético sobre mapbox
type ChoroplethTrace struct {
	Type          string          `json:"type"`
	GeoJSON       json.RawMessage `json:"geojson,omitempty"`
	FeatureIDKey  string          `json:"featureidkey,omitempty"`
	Locations     []string        `json:"locations"`
	Z             []*float64      `json:"z"`
	CustomData    []float64       `json:"customdata,omitempty"`
	ColorScale    string          `json:"colorscale"`
	ColorBar      *ColorBar       `json:"colorbar,omitempty"`
	Marker        *Marker         `json:"marker,omitempty"`
	HoverTemplate string          `json:"hovertemplate,omitempty"`
}

type ColorBar struct {
	Title Title `json:"title"`
}

type Marker struct {
	Opacity float64 `json:"opacity"`
}

type Title struct {
	Text string `json:"text"`
}

type FigureLayout struct {
	BarMode string  `json:"barmode,omitempty"`
	XAxis   *Axis   `json:"xaxis,omitempty"`
	YAxis   *Axis   `json:"yaxis,omitempty"`
	Mapbox  *Mapbox `json:"mapbox,omitempty"`
	Margin  *Margin `json:"margin,omitempty"`
}

type Axis struct {
	Title Title  `json:"title"`
	Type  string `json:"type,omitempty"`
}

type Mapbox struct {
	Style  string  `json:"style"`
	Zoom   float64 `json:"zoom"`
	Center LatLng  `json:"center"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Margin struct {
	R float64 `json:"r"`
	T float64 `json:"t"`
	L float64 `json:"l"`
	B float64 `json:"b"`
}

// EmptyFigure é o gráfico de barras antes da primeira interação
func EmptyFigure() *Figure {
	return &Figure{Data: []any{}}
}
