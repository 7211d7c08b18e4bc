package domain

// HoverTarget é o bairro sob o ponteiro no mapa. Ausente quando nil.
type HoverTarget struct {
	Location string
}

// NewHoverTarget devolve nil para uma localização vazia
func NewHoverTarget(location string) *HoverTarget {
	if location == "" {
		return nil
	}
	return &HoverTarget{Location: location}
}

// Option é uma escolha do seletor de atributo
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Dropdown struct {
	ID      string   `json:"id"`
	Options []Option `json:"options"`
	Default string   `json:"value"`
}

// Allows indica se o valor faz parte das escolhas declaradas
func (d Dropdown) Allows(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Graph é uma região de exibição da página
type Graph struct {
	ID        string `json:"id"`
	ClassName string `json:"class_name"`
}

// PageLayout descreve a página do dashboard
type PageLayout struct {
	Title      string
	Stylesheet string
	PlotlyURL  string
	Dropdown   Dropdown
	Map        Graph
	Bar        Graph
}
