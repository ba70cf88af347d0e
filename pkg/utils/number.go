package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários e métricas exibidas no dashboard
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}

	return math.Round(f*100) / 100
}

// RoundPtr arredonda uma métrica opcional; nil continua nil
func RoundPtr(f *float64) *float64 {
	if f == nil {
		return nil
	}
	rounded := RoundWithTwoDecimalPlace(*f)
	return &rounded
}
