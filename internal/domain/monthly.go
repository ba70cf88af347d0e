package domain

// MonthlyRecord é uma linha bruta marcada com o rótulo do mês e chaves de filtro
type MonthlyRecord struct {
	Month   string             `json:"month"`
	Channel string             `json:"channel"`
	Factor  string             `json:"factor"`
	Values  map[string]float64 `json:"values"`
}

// MonthlyFilter aplica filtros de igualdade; campos vazios não filtram
type MonthlyFilter struct {
	Channel     string
	Factor      string
	ChangeField string
}

// MonthlyAggregate é a média dos campos numéricos de um mês.
// Change é nil quando não há mês anterior ou o valor anterior é zero.
type MonthlyAggregate struct {
	Month  string             `json:"month"`
	Count  int                `json:"count"`
	Values map[string]float64 `json:"values"`
	Change *float64           `json:"change"`
}
