// Package waterfall prepara os dados do gráfico em cascata (soma acumulada)
package waterfall

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	TotalName = "Total"
	TotalFill = "#6366f1"
)

var ErrInvalidContributions = errors.New("waterfall: invalid contributions")

// Prepare anota cada contribuição com a soma acumulada das anteriores (Baseline) e
// acrescenta o segmento Total ao final. Os valores de entrada não são alterados.
// O Baseline vem de uma soma decimal exata; o Total é a soma em float64 dos
// valores emitidos, na mesma ordem, então somar os segmentos reproduz o Total.
func Prepare(contributions []domain.Contribution) (*domain.WaterfallChart, error) {
	if err := Validate(contributions); err != nil {
		return nil, err
	}

	segments := make([]domain.WaterfallSegment, 0, len(contributions)+1)
	running := decimal.Zero
	total := 0.0

	for _, c := range contributions {
		segments = append(segments, domain.WaterfallSegment{
			Name:     c.Name,
			Value:    c.Value,
			Baseline: running.InexactFloat64(),
			Fill:     c.Fill,
		})

		running = running.Add(decimal.NewFromFloat(c.Value))
		total += c.Value
	}

	segments = append(segments, domain.WaterfallSegment{
		Name:     TotalName,
		Value:    total,
		Baseline: 0,
		Fill:     TotalFill,
		IsTotal:  true,
	})

	return &domain.WaterfallChart{
		Segments: segments,
		Total:    total,
	}, nil
}

// PrepareWithFallback usa o dataset padrão quando as contribuições são inválidas.
// O uso do fallback fica registrado em UsedFallback.
func PrepareWithFallback(contributions, defaults []domain.Contribution) (*domain.WaterfallChart, error) {
	chart, err := Prepare(contributions)
	if err == nil {
		return chart, nil
	}
	if !errors.Is(err, ErrInvalidContributions) {
		return nil, err
	}

	chart, err = Prepare(defaults)
	if err != nil {
		return nil, fmt.Errorf("dataset padrão inválido: %w", err)
	}
	chart.UsedFallback = true

	return chart, nil
}

// Validate rejeita entradas vazias, valores não finitos e total zero.
// O total zero é verificado nos valores brutos, tanto na soma exata quanto em float64.
func Validate(contributions []domain.Contribution) error {
	if len(contributions) == 0 {
		return fmt.Errorf("%w: no contributions", ErrInvalidContributions)
	}

	exact := decimal.Zero
	total := 0.0
	for _, c := range contributions {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return fmt.Errorf("%w: %s is not a finite value", ErrInvalidContributions, c.Name)
		}
		exact = exact.Add(decimal.NewFromFloat(c.Value))
		total += c.Value
	}

	if exact.IsZero() || total == 0 {
		return fmt.Errorf("%w: contributions sum to zero", ErrInvalidContributions)
	}

	return nil
}
