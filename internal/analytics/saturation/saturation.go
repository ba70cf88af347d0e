// Package saturation detecta os pontos notáveis de uma curva de resposta investimento x receita
package saturation

import (
	"errors"
	"fmt"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var (
	ErrNotEnoughPoints    = errors.New("saturation: at least two points are required")
	ErrSpendNotIncreasing = errors.New("saturation: spend must be strictly increasing")
)

// Thresholds controla as regras de retorno decrescente e de saturação
type Thresholds struct {
	// DiminishingRatio é a fração da derivada anterior abaixo da qual o retorno é decrescente
	DiminishingRatio float64
	// FlatnessThreshold é a derivada máxima considerada "plana"
	FlatnessThreshold float64
	// SpendThreshold é o investimento mínimo para procurar retorno decrescente
	SpendThreshold float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DiminishingRatio:  0.7,
		FlatnessThreshold: 0.1,
		SpendThreshold:    60000,
	}
}

// Analyzer aplica os limites configurados às curvas
type Analyzer struct {
	thresholds Thresholds
}

func NewAnalyzer(thresholds Thresholds) *Analyzer {
	return &Analyzer{thresholds: thresholds}
}

func (a *Analyzer) Thresholds() Thresholds {
	return a.thresholds
}

// Analyze anota o ROI de cada ponto e localiza os quatro marcadores da curva.
// Cada marcador é nil quando nenhum ponto se qualifica.
func (a *Analyzer) Analyze(channel string, points []domain.CurvePoint) (*domain.SaturationAnalysis, error) {
	if err := validate(points); err != nil {
		return nil, fmt.Errorf("%s: %w", channel, err)
	}

	annotated := make([]domain.CurvePoint, len(points))
	for i, p := range points {
		annotated[i] = domain.CurvePoint{
			Spend:   p.Spend,
			Revenue: p.Revenue,
			ROI:     stats.RatioPtr(p.Revenue, p.Spend),
		}
	}

	derivs := derivatives(annotated)

	return &domain.SaturationAnalysis{
		Channel:            channel,
		Points:             annotated,
		MostEfficient:      mostEfficient(annotated),
		MaxMarginal:        maxMarginal(annotated, derivs),
		DiminishingReturns: a.diminishingReturns(annotated, derivs),
		Saturation:         a.saturation(annotated, derivs),
	}, nil
}

// Analyze usa os limites padrão
func Analyze(channel string, points []domain.CurvePoint) (*domain.SaturationAnalysis, error) {
	return NewAnalyzer(DefaultThresholds()).Analyze(channel, points)
}

func validate(points []domain.CurvePoint) error {
	if len(points) < 2 {
		return ErrNotEnoughPoints
	}
	for i := 1; i < len(points); i++ {
		if points[i].Spend <= points[i-1].Spend {
			return fmt.Errorf("%w: index %d", ErrSpendNotIncreasing, i)
		}
	}
	return nil
}

// derivatives retorna a derivada discreta de cada intervalo; derivs[0] não é usada
func derivatives(points []domain.CurvePoint) []float64 {
	derivs := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		// spend é estritamente crescente, o denominador nunca é zero
		derivs[i], _ = stats.Ratio(points[i].Revenue-points[i-1].Revenue, points[i].Spend-points[i-1].Spend)
	}
	return derivs
}

func marker(points []domain.CurvePoint, i int, value float64) *domain.CurveMarker {
	return &domain.CurveMarker{
		Index:   i,
		Spend:   points[i].Spend,
		Revenue: points[i].Revenue,
		Value:   value,
	}
}

func mostEfficient(points []domain.CurvePoint) *domain.CurveMarker {
	var best *domain.CurveMarker
	for i, p := range points {
		if p.ROI == nil {
			continue
		}
		if best == nil || *p.ROI > best.Value {
			best = marker(points, i, *p.ROI)
		}
	}
	return best
}

func maxMarginal(points []domain.CurvePoint, derivs []float64) *domain.CurveMarker {
	best := marker(points, 1, derivs[1])
	for i := 2; i < len(points); i++ {
		if derivs[i] > best.Value {
			best = marker(points, i, derivs[i])
		}
	}
	return best
}

func (a *Analyzer) diminishingReturns(points []domain.CurvePoint, derivs []float64) *domain.CurveMarker {
	for i := 2; i < len(points); i++ {
		if points[i].Spend <= a.thresholds.SpendThreshold {
			continue
		}
		if derivs[i] < a.thresholds.DiminishingRatio*derivs[i-1] {
			return marker(points, i, derivs[i])
		}
	}
	return nil
}

// saturation percorre a curva de trás para frente e retorna o limite da cauda plana
func (a *Analyzer) saturation(points []domain.CurvePoint, derivs []float64) *domain.CurveMarker {
	for i := len(points) - 1; i >= 1; i-- {
		if derivs[i] > a.thresholds.FlatnessThreshold {
			return marker(points, i, derivs[i])
		}
	}
	return nil
}
