package periodic

import (
	"math"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const DefaultAnomalyThreshold = 2.5

// YearOverYear calcula a variação de cada ponto e os totais da série.
// Os pontos recebidos não são alterados.
func YearOverYear(points []domain.TimeSeriesPoint) *domain.YearOverYearResponse {
	result := &domain.YearOverYearResponse{
		Points: make([]domain.TimeSeriesPoint, len(points)),
	}

	for i, p := range points {
		p.Change = stats.PercentChange(p.CurrentYear, p.PreviousYear)
		result.Points[i] = p

		result.TotalCurrent += p.CurrentYear
		result.TotalPrevious += p.PreviousYear
	}

	result.TotalChange = stats.PercentChange(result.TotalCurrent, result.TotalPrevious)

	return result
}

// FlagAnomalies marca os pontos cujo z-score de CurrentYear excede o limite em módulo.
// Uma série constante não tem anomalias. Retorna a quantidade de pontos marcados.
func FlagAnomalies(points []domain.TimeSeriesPoint, threshold float64) int {
	if len(points) == 0 {
		return 0
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.CurrentYear
	}

	summary, err := stats.Describe(values)
	if err != nil || summary.StdDev == 0 {
		return 0
	}

	flagged := 0
	for i := range points {
		z := stats.ZScore(points[i].CurrentYear, summary.Mean, summary.StdDev)
		points[i].ZScore = z
		points[i].Anomaly = ""

		if math.Abs(z) <= threshold {
			continue
		}

		if z > 0 {
			points[i].Anomaly = domain.AnomalySpike
		} else {
			points[i].Anomaly = domain.AnomalyDrop
		}
		flagged++
	}

	return flagged
}
