// Package stats contém as funções estatísticas usadas pelos painéis do dashboard
package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrEmptyInput     = errors.New("stats: empty input")
	ErrLengthMismatch = errors.New("stats: series length mismatch")
)

// Summary agrupa as medidas de dispersão de uma série
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Mean calcula a média aritmética
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(values) / float64(len(values)), nil
}

// Median retorna o valor central de uma cópia ordenada da série.
// Para quantidade par, retorna a média dos dois valores centrais.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// StdDev calcula o desvio padrão populacional (divide por N)
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}

	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	return math.Sqrt(varianceSum / float64(len(values))), nil
}

func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// Describe calcula todas as medidas de uma vez
func Describe(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	mean, _ := Mean(values)
	median, _ := Median(values)
	stdDev, _ := StdDev(values)
	min, _ := Min(values)
	max, _ := Max(values)

	return &Summary{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}, nil
}

// ZScore retorna quantos desvios padrão o valor está da média.
// Desvio zero retorna 0.
func ZScore(value, mean, stdDev float64) float64 {
	z, ok := Ratio(value-mean, stdDev)
	if !ok {
		return 0
	}
	return z
}
