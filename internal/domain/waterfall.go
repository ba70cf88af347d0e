package domain

// Contribution é uma parcela nomeada que compõe o total do gráfico em cascata
type Contribution struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Fill  string  `json:"fill,omitempty"`
}

// WaterfallSegment é renderizado como a barra flutuante [Baseline, Baseline+Value].
// O segmento total tem Baseline 0 e é sempre o último.
type WaterfallSegment struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Baseline float64 `json:"baseline"`
	Fill     string  `json:"fill,omitempty"`
	IsTotal  bool    `json:"isTotal,omitempty"`
}

type WaterfallChart struct {
	Segments     []WaterfallSegment `json:"segments"`
	Total        float64            `json:"total"`
	UsedFallback bool               `json:"usedFallback"`
}
