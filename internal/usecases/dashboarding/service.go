package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/experiment"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/periodic"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/saturation"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/waterfall"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

const defaultChangeField = domain.MetricRevenue

type Service struct {
	loader             DatasetLoader
	snapshotRepository repository.SnapshotRepository
	analyzer           *saturation.Analyzer
	anomalyThreshold   float64
	alpha              float64
	defaultWaterfall   []domain.Contribution

	mu      sync.RWMutex
	dataset *domain.Dataset
}

// NewService cria o serviço do dashboard. snapshotRepository pode ser nil quando o
// arquivo de snapshots está desabilitado.
func NewService(
	cfg *config.Config,
	loader DatasetLoader,
	snapshotRepository repository.SnapshotRepository,
	defaultWaterfall []domain.Contribution,
) *Service {
	return &Service{
		loader:             loader,
		snapshotRepository: snapshotRepository,
		analyzer:           saturation.NewAnalyzer(cfg.Saturation.Thresholds()),
		anomalyThreshold:   cfg.Anomaly.ZScoreThreshold,
		alpha:              cfg.Experiment.Alpha,
		defaultWaterfall:   defaultWaterfall,
	}
}

var _ Dashboarder = (*Service)(nil)

func (s *Service) Refresh(ctx context.Context) (*domain.RefreshResult, error) {
	dataset, err := s.loader.Load(ctx)
	if err != nil {
		return nil, NewDashboardError(ErrLoadDataset, apiErrors.ErrInternalServer, err.Error())
	}

	s.mu.Lock()
	s.dataset = dataset
	s.mu.Unlock()

	result := &domain.RefreshResult{
		DatasetID:   dataset.ID,
		Seed:        dataset.Seed,
		GeneratedAt: dataset.GeneratedAt,
	}

	if s.snapshotRepository == nil {
		return result, nil
	}

	// falha no arquivo não desfaz a atualização
	if err := s.snapshotRepository.Save(ctx, dataset.Snapshot()); err != nil {
		logrus.WithError(err).WithField("dataset_id", dataset.ID).Error("Erro ao arquivar snapshot do dataset")
		result.ArchiveError = err.Error()
		return result, nil
	}
	result.Archived = true

	return result, nil
}

func (s *Service) current() (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return nil, NewDashboardError(ErrDatasetNotLoaded, apiErrors.ErrDatasetNotLoaded, "Nenhum dataset carregado ainda")
	}
	return s.dataset, nil
}

func rowsByKind(dataset *domain.Dataset, kind domain.MetricKind) ([]domain.MetricRecord, domain.MetricKind, error) {
	switch kind {
	case "", domain.MetricKindChannel:
		return dataset.Channels, domain.MetricKindChannel, nil
	case domain.MetricKindCampaign:
		return dataset.Campaigns, domain.MetricKindCampaign, nil
	default:
		return nil, "", NewDashboardError(ErrInvalidKind, apiErrors.ErrInvalidRequest, fmt.Sprintf("kind deve ser %q ou %q", domain.MetricKindChannel, domain.MetricKindCampaign))
	}
}

func (s *Service) ChannelSummary(kind domain.MetricKind) (*domain.ChannelSummary, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return channelSummary(dataset, kind)
}

func channelSummary(dataset *domain.Dataset, kind domain.MetricKind) (*domain.ChannelSummary, error) {
	rows, kind, err := rowsByKind(dataset, kind)
	if err != nil {
		return nil, err
	}

	summary := &domain.ChannelSummary{
		Kind:    kind,
		Rows:    rows,
		Metrics: make(map[string]*stats.Summary, len(domain.CorrelationMetrics)),
	}

	for _, metric := range domain.CorrelationMetrics {
		values := definedValues(rows, metric)
		described, err := stats.Describe(values)
		if err != nil {
			// métrica indefinida em todas as linhas
			summary.Metrics[metric] = nil
			continue
		}
		summary.Metrics[metric] = roundSummary(described)
	}

	for _, row := range rows {
		summary.TotalRevenue += row.Revenue
		summary.TotalCost += row.Cost
	}
	summary.AggregateROAS = utils.RoundPtr(stats.RatioPtr(summary.TotalRevenue, summary.TotalCost))
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalCost = utils.RoundWithTwoDecimalPlace(summary.TotalCost)

	return summary, nil
}

func (s *Service) Correlation(kind domain.MetricKind) (*stats.Matrix, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return correlation(dataset, kind)
}

func correlation(dataset *domain.Dataset, kind domain.MetricKind) (*stats.Matrix, error) {
	rows, _, err := rowsByKind(dataset, kind)
	if err != nil {
		return nil, err
	}

	return correlationMatrix(rows)
}

func correlationMatrix(rows []domain.MetricRecord) (*stats.Matrix, error) {
	columns := make([]stats.Column, 0, len(domain.CorrelationMetrics))
	for _, metric := range domain.CorrelationMetrics {
		column := stats.Column{Name: metric, Values: make([]*float64, len(rows))}
		for i := range rows {
			column.Values[i] = rows[i].Value(metric)
		}
		columns = append(columns, column)
	}

	matrix, err := stats.CorrelationMatrix(columns)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidData, apiErrors.ErrInsufficientData, err.Error())
	}
	return matrix, nil
}

func (s *Service) Waterfall() (*domain.WaterfallChart, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.waterfall(dataset)
}

func (s *Service) waterfall(dataset *domain.Dataset) (*domain.WaterfallChart, error) {
	chart, err := waterfall.PrepareWithFallback(dataset.Waterfall, s.defaultWaterfall)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidData, apiErrors.ErrInsufficientData, err.Error())
	}

	if chart.UsedFallback {
		logrus.WithField("dataset_id", dataset.ID).Warn("Contribuições inválidas, usando cascata padrão")
	}

	return chart, nil
}

func (s *Service) Saturation(channel string) (*domain.SaturationAnalysis, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	name, points, ok := findCurve(dataset.Curves, channel)
	if !ok {
		return nil, NewDashboardError(ErrChannelNotFound, apiErrors.ErrNotFound,
			fmt.Sprintf("canal %q sem curva; disponíveis: %s", channel, strings.Join(curveChannels(dataset.Curves), ", ")))
	}

	analysis, err := s.analyzer.Analyze(name, points)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidData, apiErrors.ErrInsufficientData, err.Error())
	}

	return analysis, nil
}

func (s *Service) MonthlyTrend(filter domain.MonthlyFilter) ([]domain.MonthlyAggregate, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}
	return monthlyTrend(dataset, filter)
}

func monthlyTrend(dataset *domain.Dataset, filter domain.MonthlyFilter) ([]domain.MonthlyAggregate, error) {
	if filter.ChangeField == "" {
		filter.ChangeField = defaultChangeField
	}

	aggregates, err := periodic.AggregateMonthly(dataset.Monthly, filter)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidData, apiErrors.ErrInsufficientData, err.Error())
	}

	for i := range aggregates {
		for field, value := range aggregates[i].Values {
			aggregates[i].Values[field] = utils.RoundWithTwoDecimalPlace(value)
		}
	}

	return aggregates, nil
}

func (s *Service) YearOverYear() (*domain.YearOverYearResponse, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	response := periodic.YearOverYear(dataset.YearOverYear)
	response.Anomalies = periodic.FlagAnomalies(response.Points, s.anomalyThreshold)

	return response, nil
}

func (s *Service) ABTests() ([]domain.ABTestResult, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	return experiment.EvaluateAll(dataset.ABTests, s.alpha), nil
}

// Report monta todos os painéis a partir de uma única leitura do dataset,
// então um Refresh concorrente não mistura dois datasets no mesmo relatório.
func (s *Service) Report() (*domain.DashboardReport, error) {
	dataset, err := s.current()
	if err != nil {
		return nil, err
	}

	report := &domain.DashboardReport{
		DatasetID:   dataset.ID,
		GeneratedAt: dataset.GeneratedAt,
	}

	if report.Channels, err = channelSummary(dataset, domain.MetricKindChannel); err != nil {
		return nil, err
	}
	if report.Campaigns, err = channelSummary(dataset, domain.MetricKindCampaign); err != nil {
		return nil, err
	}
	if report.Correlation, err = correlation(dataset, domain.MetricKindCampaign); err != nil {
		return nil, err
	}
	if report.Waterfall, err = s.waterfall(dataset); err != nil {
		return nil, err
	}
	if report.Monthly, err = monthlyTrend(dataset, domain.MonthlyFilter{}); err != nil {
		return nil, err
	}
	report.ABTests = experiment.EvaluateAll(dataset.ABTests, s.alpha)

	return report, nil
}

func (s *Service) Snapshots(ctx context.Context, limit int) ([]*domain.SnapshotEntry, error) {
	if s.snapshotRepository == nil {
		return nil, NewDashboardError(ErrArchiveDisabled, apiErrors.ErrFeatureDisabled, "Defina ARCHIVE_ENABLED=true para arquivar snapshots")
	}

	snapshots, err := s.snapshotRepository.List(ctx, limit)
	if err != nil {
		return nil, NewDashboardError(ErrFetchSnapshots, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return snapshots, nil
}

func (s *Service) Snapshot(ctx context.Context, id string) (*domain.SnapshotEntry, error) {
	if s.snapshotRepository == nil {
		return nil, NewDashboardError(ErrArchiveDisabled, apiErrors.ErrFeatureDisabled, "Defina ARCHIVE_ENABLED=true para arquivar snapshots")
	}

	snapshot, err := s.snapshotRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, NewDashboardError(ErrSnapshotNotFound, apiErrors.ErrNotFound, id)
		}
		return nil, NewDashboardError(ErrFetchSnapshots, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return snapshot, nil
}

func definedValues(rows []domain.MetricRecord, metric string) []float64 {
	values := make([]float64, 0, len(rows))
	for i := range rows {
		if v := rows[i].Value(metric); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

func roundSummary(s *stats.Summary) *stats.Summary {
	return &stats.Summary{
		Count:  s.Count,
		Mean:   utils.RoundWithTwoDecimalPlace(s.Mean),
		Median: utils.RoundWithTwoDecimalPlace(s.Median),
		StdDev: utils.RoundWithTwoDecimalPlace(s.StdDev),
		Min:    utils.RoundWithTwoDecimalPlace(s.Min),
		Max:    utils.RoundWithTwoDecimalPlace(s.Max),
	}
}

// findCurve busca o canal sem diferenciar maiúsculas e aceita hífens no lugar de espaços
func findCurve(curves map[string][]domain.CurvePoint, channel string) (string, []domain.CurvePoint, bool) {
	wanted := strings.ReplaceAll(strings.TrimSpace(channel), "-", " ")
	for name, points := range curves {
		if strings.EqualFold(name, wanted) {
			return name, points, true
		}
	}
	return "", nil, false
}

func curveChannels(curves map[string][]domain.CurvePoint) []string {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
