package dataset

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusKm é o raio médio da Terra
const EarthRadiusKm = 6371.0088

func (g *geometry) areaKm2() (float64, error) {
	if g == nil || len(g.Coordinates) == 0 {
		return 0, nil
	}

	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := jsonAPI.Unmarshal(g.Coordinates, &rings); err != nil {
			return 0, err
		}
		return PolygonArea(rings), nil
	case "MultiPolygon":
		var polygons [][][][]float64
		if err := jsonAPI.Unmarshal(g.Coordinates, &polygons); err != nil {
			return 0, err
		}
		total := 0.0
		for _, rings := range polygons {
			total += PolygonArea(rings)
		}
		return total, nil
	default:
		// Pontos e linhas não têm área
		return 0, nil
	}
}

// PolygonArea calcula a área em km² de um polígono GeoJSON ([lon, lat]).
// O primeiro anel é o contorno, os demais são buracos.
func PolygonArea(rings [][][]float64) float64 {
	if len(rings) == 0 {
		return 0
	}

	area := ringArea(rings[0])
	for _, hole := range rings[1:] {
		area -= ringArea(hole)
	}

	if area < 0 {
		return 0
	}
	return area
}

func ringArea(ring [][]float64) float64 {
	// GeoJSON repete o primeiro vértice no final; o s2 não
	if len(ring) > 1 && samePosition(ring[0], ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}

	points := make([]s2.Point, 0, len(ring))
	for _, position := range ring {
		if len(position) < 2 {
			continue
		}
		points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(position[1], position[0])))
	}

	if len(points) < 3 {
		return 0
	}

	loop := s2.LoopFromPoints(points)
	loop.Normalize()
	return loop.Area() * EarthRadiusKm * EarthRadiusKm
}

func samePosition(a, b []float64) bool {
	return len(a) >= 2 && len(b) >= 2 && a[0] == b[0] && a[1] == b[1]
}
