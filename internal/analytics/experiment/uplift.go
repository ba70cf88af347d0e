// Package experiment avalia testes A/B de conversão
package experiment

import (
	"math"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const DefaultAlpha = 0.05

// Uplift é a variação percentual do tratamento sobre o controle; nil quando o controle é zero
func Uplift(control, treatment float64) *float64 {
	return stats.PercentChange(treatment, control)
}

// ConversionRate retorna conversões/visitantes em porcentagem
func ConversionRate(v domain.Variant) *float64 {
	rate, ok := stats.Ratio(float64(v.Conversions), float64(v.Visitors))
	if !ok {
		return nil
	}
	rate *= 100
	return &rate
}

// Evaluate compara as taxas de conversão com um teste z de duas proporções (bicaudal).
// O resultado é significativo quando o p-valor é menor que alpha.
func Evaluate(test domain.ABTest, alpha float64) domain.ABTestResult {
	result := domain.ABTestResult{
		Name:          test.Name,
		Channel:       test.Channel,
		ControlRate:   ConversionRate(test.Control),
		TreatmentRate: ConversionRate(test.Treatment),
		PValue:        1,
	}

	if result.ControlRate != nil && result.TreatmentRate != nil {
		result.Uplift = Uplift(*result.ControlRate, *result.TreatmentRate)
	}

	z, ok := twoProportionZ(test.Control, test.Treatment)
	if !ok {
		return result
	}

	result.ZScore = z
	result.PValue = math.Erfc(math.Abs(z) / math.Sqrt2)
	result.Significant = result.PValue < alpha

	return result
}

// EvaluateAll avalia cada teste com o mesmo alpha
func EvaluateAll(tests []domain.ABTest, alpha float64) []domain.ABTestResult {
	results := make([]domain.ABTestResult, 0, len(tests))
	for _, t := range tests {
		results = append(results, Evaluate(t, alpha))
	}
	return results
}

func twoProportionZ(control, treatment domain.Variant) (float64, bool) {
	n1, n2 := float64(control.Visitors), float64(treatment.Visitors)
	if n1 <= 0 || n2 <= 0 {
		return 0, false
	}

	p1 := float64(control.Conversions) / n1
	p2 := float64(treatment.Conversions) / n2
	pooled := float64(control.Conversions+treatment.Conversions) / (n1 + n2)

	se := math.Sqrt(pooled * (1 - pooled) * (1/n1 + 1/n2))

	return stats.Ratio(p2-p1, se)
}
