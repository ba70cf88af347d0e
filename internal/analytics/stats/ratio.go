package stats

import "math"

// Ratio é a única guarda de divisão usada pelas métricas derivadas (ROAS, CPA,
// variação percentual, uplift). ok é false quando o denominador é zero ou quando
// algum operando não é finito; nesse caso o valor deve ser tratado como indefinido.
func Ratio(numerator, denominator float64) (float64, bool) {
	if denominator == 0 || !isFinite(numerator) || !isFinite(denominator) {
		return 0, false
	}
	return numerator / denominator, true
}

// RatioPtr é a forma serializável de Ratio: nil representa razão indefinida
func RatioPtr(numerator, denominator float64) *float64 {
	v, ok := Ratio(numerator, denominator)
	if !ok {
		return nil
	}
	return &v
}

// PercentChange retorna (current - previous) / previous * 100, nil quando previous é zero
func PercentChange(current, previous float64) *float64 {
	v, ok := Ratio(current-previous, previous)
	if !ok {
		return nil
	}
	v *= 100
	return &v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
