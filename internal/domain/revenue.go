package domain

// RevenueRow é uma linha da tabela agregada: chave do grupo -> receita média
type RevenueRow struct {
	Key        string  `json:"key"`
	AvgRevenue float64 `json:"avg_revenue"` // NaN quando o grupo não tem receita válida
}

// AggregateRevenueTable é a receita média por grupo de um snapshot
type AggregateRevenueTable struct {
	Year     string       `json:"year"`
	GroupKey string       `json:"group_key"`
	Rows     []RevenueRow `json:"rows"`
}

// Keys devolve as chaves na ordem da tabela
func (t *AggregateRevenueTable) Keys() []string {
	keys := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		keys = append(keys, row.Key)
	}
	return keys
}

// Values devolve as receitas médias na ordem da tabela
func (t *AggregateRevenueTable) Values() []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.AvgRevenue)
	}
	return values
}
