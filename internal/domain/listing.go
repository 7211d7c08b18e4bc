// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/go-gota/gota/dataframe"
)

// Colunas usadas pelo dashboard
const (
	ColNeighbourhood  = "neighbourhood"
	ColRoomType       = "room_type"
	ColBeds           = "beds"
	ColPrice          = "price"
	ColAvailability30 = "availability_30"
	ColRevenue        = "revenue"
)

// RequiredColumns são as colunas que todo snapshot precisa ter depois da carga
var RequiredColumns = []string{
	ColNeighbourhood,
	ColRoomType,
	ColBeds,
	ColPrice,
	ColAvailability30,
}

// DaysInWindow é a janela de disponibilidade usada na estimativa de receita
const DaysInWindow = 30

// Snapshot é a tabela completa de anúncios de um ano.
// Depois de carregado é somente leitura.
type Snapshot struct {
	Year  string
	frame dataframe.DataFrame
}

func NewSnapshot(year string, frame dataframe.DataFrame) *Snapshot {
	return &Snapshot{
		Year:  year,
		frame: frame,
	}
}

// Frame devolve o dataframe subjacente
func (s *Snapshot) Frame() dataframe.DataFrame {
	return s.frame
}

func (s *Snapshot) Len() int {
	return s.frame.Nrow()
}

// HasColumn indica se o snapshot possui a coluna informada
func (s *Snapshot) HasColumn(name string) bool {
	for _, c := range s.frame.Names() {
		if c == name {
			return true
		}
	}
	return false
}

// Snapshots é a lista ordenada de anos exibidos (ex: 2019 e depois 2020)
type Snapshots []*Snapshot

// Latest devolve o snapshot mais recente, usado no mapa
func (s Snapshots) Latest() *Snapshot {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// NeighbourhoodBoundary é um polígono de bairro do documento de fronteiras
type NeighbourhoodBoundary struct {
	Name    string
	AreaKm2 float64
}

// Boundaries guarda o documento GeoJSON bruto (repassado intacto ao mapa)
// e o índice de bairros encontrados nele.
type Boundaries struct {
	Document       []byte
	FeatureIDKey   string
	Neighbourhoods []NeighbourhoodBoundary
}

// Area devolve a área em km² de um bairro
func (b *Boundaries) Area(name string) (float64, bool) {
	if b == nil {
		return 0, false
	}
	for _, n := range b.Neighbourhoods {
		if n.Name == name {
			return n.AreaKm2, true
		}
	}
	return 0, false
}
