package domain

type AnomalyType string

const (
	AnomalySpike AnomalyType = "spike"
	AnomalyDrop  AnomalyType = "drop"
)

// TimeSeriesPoint é um período (dia, semana ou mês) comparado ao mesmo período do ano anterior
type TimeSeriesPoint struct {
	Date         string      `json:"date"`
	CurrentYear  float64     `json:"currentYear"`
	PreviousYear float64     `json:"previousYear"`
	Change       *float64    `json:"change"`
	Anomaly      AnomalyType `json:"anomaly,omitempty"`
	ZScore       float64     `json:"zScore,omitempty"`
}

type YearOverYearResponse struct {
	Points        []TimeSeriesPoint `json:"points"`
	TotalCurrent  float64           `json:"totalCurrent"`
	TotalPrevious float64           `json:"totalPrevious"`
	TotalChange   *float64          `json:"totalChange"`
	Anomalies     int               `json:"anomalies"`
}
