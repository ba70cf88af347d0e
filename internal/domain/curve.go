package domain

// CurvePoint é um ponto da curva de resposta investimento x receita, ordenada por Spend
type CurvePoint struct {
	Spend   float64  `json:"spend"`
	Revenue float64  `json:"revenue"`
	ROI     *float64 `json:"roi,omitempty"`
}

// CurveMarker identifica um ponto notável da curva; Value é a razão ou derivada que o qualificou
type CurveMarker struct {
	Index   int     `json:"index"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	Value   float64 `json:"value"`
}

type SaturationAnalysis struct {
	Channel            string       `json:"channel"`
	Points             []CurvePoint `json:"points"`
	MostEfficient      *CurveMarker `json:"mostEfficient"`
	MaxMarginal        *CurveMarker `json:"maxMarginal"`
	DiminishingReturns *CurveMarker `json:"diminishingReturns"`
	Saturation         *CurveMarker `json:"saturation"`
}
