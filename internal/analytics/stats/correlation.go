package stats

import (
	"fmt"
	"math"
)

// Correlation calcula o coeficiente de Pearson entre duas séries de mesmo tamanho.
// Quando uma das séries não tem variância o denominador é zero e o resultado é 0.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	// somas centradas na média evitam cancelamento com séries de valores altos
	var sumXY, sumXX, sumYY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		sumXY += dx * dy
		sumXX += dx * dx
		sumYY += dy * dy
	}

	numerator := sumXY
	denominator := math.Sqrt(sumXX * sumYY)

	r, ok := Ratio(numerator, denominator)
	if !ok {
		return 0, nil
	}

	// erro de arredondamento pode passar levemente de 1
	return math.Max(-1, math.Min(1, r)), nil
}

// Column é uma métrica nomeada com valores opcionais por linha (nil = indefinido)
type Column struct {
	Name   string
	Values []*float64
}

// Matrix é a matriz de correlação simétrica entre métricas
type Matrix struct {
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

// At retorna a correlação entre duas métricas pelo nome
func (m *Matrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, name := range m.Metrics {
		if name == a {
			i = k
		}
		if name == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// CorrelationMatrix monta a matriz NxN. A diagonal é sempre 1 e não é calculada.
// Para cada par, linhas em que alguma das duas métricas é indefinida são ignoradas.
func CorrelationMatrix(columns []Column) (*Matrix, error) {
	if len(columns) == 0 {
		return nil, ErrEmptyInput
	}

	rows := len(columns[0].Values)
	for _, c := range columns[1:] {
		if len(c.Values) != rows {
			return nil, fmt.Errorf("%w: column %s has %d rows, expected %d", ErrLengthMismatch, c.Name, len(c.Values), rows)
		}
	}

	matrix := &Matrix{
		Metrics: make([]string, len(columns)),
		Values:  make([][]float64, len(columns)),
	}
	for i, c := range columns {
		matrix.Metrics[i] = c.Name
		matrix.Values[i] = make([]float64, len(columns))
		matrix.Values[i][i] = 1
	}

	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			x, y := pairwiseComplete(columns[i].Values, columns[j].Values)
			r := 0.0
			if len(x) > 0 {
				r, _ = Correlation(x, y)
			}
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}

	return matrix, nil
}

func pairwiseComplete(a, b []*float64) ([]float64, []float64) {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for i := range a {
		if a[i] == nil || b[i] == nil {
			continue
		}
		x = append(x, *a[i])
		y = append(y, *b[i])
	}
	return x, y
}
