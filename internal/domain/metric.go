// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
)

type MetricKind string

const (
	MetricKindChannel  MetricKind = "channel"
	MetricKindCampaign MetricKind = "campaign"
)

// Nomes das métricas usadas na matriz de correlação
const (
	MetricRevenue    = "revenue"
	MetricCost       = "cost"
	MetricROAS       = "roas"
	MetricConversion = "conversion"
	MetricCPA        = "cpa"
)

// CorrelationMetrics é a ordem fixa das métricas exibidas na matriz 5x5
var CorrelationMetrics = []string{MetricRevenue, MetricCost, MetricROAS, MetricConversion, MetricCPA}

// MetricRecord representa uma linha por canal ou campanha.
// ROAS, Conversion e CPA são nil quando o denominador é zero.
type MetricRecord struct {
	Name        string     `json:"name"`
	Kind        MetricKind `json:"kind"`
	Channel     string     `json:"channel,omitempty"`
	Revenue     float64    `json:"revenue"`
	Cost        float64    `json:"cost"`
	Conversions int        `json:"conversions"`
	Clicks      int        `json:"clicks"`
	Impressions int        `json:"impressions"`
	ROAS        *float64   `json:"roas"`
	Conversion  *float64   `json:"conversion"`
	CPA         *float64   `json:"cpa"`
}

// Derive recalcula as métricas derivadas a partir dos valores brutos
func (m *MetricRecord) Derive() {
	m.ROAS = stats.RatioPtr(m.Revenue, m.Cost)
	m.CPA = stats.RatioPtr(m.Cost, float64(m.Conversions))

	m.Conversion = nil
	if rate, ok := stats.Ratio(float64(m.Conversions), float64(m.Clicks)); ok {
		rate *= 100
		m.Conversion = &rate
	}
}

// Value retorna a métrica pelo nome; nil quando indefinida ou desconhecida
func (m *MetricRecord) Value(metric string) *float64 {
	switch metric {
	case MetricRevenue:
		v := m.Revenue
		return &v
	case MetricCost:
		v := m.Cost
		return &v
	case MetricROAS:
		return m.ROAS
	case MetricConversion:
		return m.Conversion
	case MetricCPA:
		return m.CPA
	}
	return nil
}

// ChannelSummary é a resposta do painel de canais/campanhas
type ChannelSummary struct {
	Kind          MetricKind                `json:"kind"`
	Rows          []MetricRecord            `json:"rows"`
	Metrics       map[string]*stats.Summary `json:"metrics"`
	TotalRevenue  float64                   `json:"totalRevenue"`
	TotalCost     float64                   `json:"totalCost"`
	AggregateROAS *float64                  `json:"aggregateRoas"`
}
