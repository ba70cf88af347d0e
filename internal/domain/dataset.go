package domain

import (
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
)

// Dataset é o conjunto completo de dados exibido pelo dashboard.
// É regenerado a cada atualização e substituído por inteiro.
type Dataset struct {
	ID           string                  `json:"id"`
	Seed         uint64                  `json:"seed"`
	GeneratedAt  time.Time               `json:"generatedAt"`
	Channels     []MetricRecord          `json:"channels"`
	Campaigns    []MetricRecord          `json:"campaigns"`
	YearOverYear []TimeSeriesPoint       `json:"yearOverYear"`
	Curves       map[string][]CurvePoint `json:"curves"`
	Monthly      []MonthlyRecord         `json:"monthly"`
	ABTests      []ABTest                `json:"abTests"`
	Waterfall    []Contribution          `json:"waterfall"`
}

// TotalRevenue soma a receita dos canais
func (d *Dataset) TotalRevenue() float64 {
	var total float64
	for _, c := range d.Channels {
		total += c.Revenue
	}
	return total
}

// TotalCost soma o investimento dos canais
func (d *Dataset) TotalCost() float64 {
	var total float64
	for _, c := range d.Channels {
		total += c.Cost
	}
	return total
}

// SnapshotEntry representa um dataset arquivado no banco
type SnapshotEntry struct {
	ID           string         `json:"id"`
	Seed         uint64         `json:"seed"`
	GeneratedAt  time.Time      `json:"generatedAt"`
	Channels     []string       `json:"channels"`
	TotalRevenue float64        `json:"totalRevenue"`
	TotalCost    float64        `json:"totalCost"`
	Records      []MetricRecord `json:"records,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// DashboardReport reúne todos os painéis para exportação
type DashboardReport struct {
	DatasetID   string             `json:"datasetId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Channels    *ChannelSummary    `json:"channels"`
	Campaigns   *ChannelSummary    `json:"campaigns"`
	Correlation *stats.Matrix      `json:"correlation"`
	Waterfall   *WaterfallChart    `json:"waterfall"`
	Monthly     []MonthlyAggregate `json:"monthly"`
	ABTests     []ABTestResult     `json:"abTests"`
}

// RefreshResult descreve o dataset carregado por uma atualização
type RefreshResult struct {
	DatasetID    string    `json:"datasetId"`
	Seed         uint64    `json:"seed"`
	GeneratedAt  time.Time `json:"generatedAt"`
	Archived     bool      `json:"archived"`
	ArchiveError string    `json:"archiveError,omitempty"`
}

// Snapshot converte o dataset para o formato arquivado
func (d *Dataset) Snapshot() *SnapshotEntry {
	channels := make([]string, 0, len(d.Channels))
	for _, c := range d.Channels {
		channels = append(channels, c.Name)
	}

	records := make([]MetricRecord, 0, len(d.Channels)+len(d.Campaigns))
	records = append(records, d.Channels...)
	records = append(records, d.Campaigns...)

	return &SnapshotEntry{
		ID:           d.ID,
		Seed:         d.Seed,
		GeneratedAt:  d.GeneratedAt,
		Channels:     channels,
		TotalRevenue: d.TotalRevenue(),
		TotalCost:    d.TotalCost(),
		Records:      records,
	}
}
