package dashboarding

import (
	"context"

	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// DatasetLoader produz um dataset completo a cada chamada
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// Dashboarder expõe os cálculos de cada painel sobre o dataset atual
type Dashboarder interface {
	// Refresh carrega um novo dataset e o arquiva quando o arquivo está habilitado
	Refresh(ctx context.Context) (*domain.RefreshResult, error)

	ChannelSummary(kind domain.MetricKind) (*domain.ChannelSummary, error)
	Correlation(kind domain.MetricKind) (*stats.Matrix, error)
	Waterfall() (*domain.WaterfallChart, error)
	Saturation(channel string) (*domain.SaturationAnalysis, error)
	MonthlyTrend(filter domain.MonthlyFilter) ([]domain.MonthlyAggregate, error)
	YearOverYear() (*domain.YearOverYearResponse, error)
	ABTests() ([]domain.ABTestResult, error)

	// Report reúne todos os painéis para exportação
	Report() (*domain.DashboardReport, error)

	Snapshots(ctx context.Context, limit int) ([]*domain.SnapshotEntry, error)
	Snapshot(ctx context.Context, id string) (*domain.SnapshotEntry, error)
}
