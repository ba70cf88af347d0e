package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	repomocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Saturation: config.Saturation{DiminishingRatio: 0.7, FlatnessThreshold: 0.1, SpendThreshold: 60000},
		Anomaly:    config.Anomaly{ZScoreThreshold: 2.5},
		Experiment: config.Experiment{Alpha: 0.05},
	}
}

func record(name string, kind domain.MetricKind, revenue, cost float64, conversions, clicks int) domain.MetricRecord {
	r := domain.MetricRecord{
		Name:        name,
		Kind:        kind,
		Revenue:     revenue,
		Cost:        cost,
		Conversions: conversions,
		Clicks:      clicks,
	}
	r.Derive()
	return r
}

func testDataset() *domain.Dataset {
	channels := []domain.MetricRecord{
		record("Google Ads", domain.MetricKindChannel, 300, 100, 10, 200),
		record("Meta Ads", domain.MetricKindChannel, 200, 100, 5, 100),
		record("Organic Search", domain.MetricKindChannel, 100, 0, 4, 80),
	}

	yoy := make([]domain.TimeSeriesPoint, 10)
	for i := range yoy {
		yoy[i] = domain.TimeSeriesPoint{Date: fmt.Sprintf("2024-01-%02d", i+1), CurrentYear: 10, PreviousYear: 8}
	}
	yoy[4].CurrentYear = 100

	return &domain.Dataset{
		ID:          "abc123",
		Seed:        42,
		GeneratedAt: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Channels:    channels,
		Campaigns: []domain.MetricRecord{
			record("Google Ads - Brand", domain.MetricKindCampaign, 150, 50, 6, 100),
			record("Google Ads - Prospecting", domain.MetricKindCampaign, 150, 50, 4, 100),
			record("Meta Ads - Brand", domain.MetricKindCampaign, 200, 100, 0, 100),
		},
		YearOverYear: yoy,
		Curves: map[string][]domain.CurvePoint{
			"Google Ads": {
				{Spend: 10000, Revenue: 40000},
				{Spend: 20000, Revenue: 70000},
				{Spend: 30000, Revenue: 90000},
			},
		},
		Monthly: []domain.MonthlyRecord{
			{Month: "Feb", Channel: "Google Ads", Values: map[string]float64{"revenue": 150}},
			{Month: "Jan", Channel: "Google Ads", Values: map[string]float64{"revenue": 100}},
			{Month: "Jan", Channel: "Meta Ads", Values: map[string]float64{"revenue": 50}},
		},
		ABTests: []domain.ABTest{
			{
				Name:      "Landing page",
				Control:   domain.Variant{Visitors: 10000, Conversions: 500},
				Treatment: domain.Variant{Visitors: 10000, Conversions: 600},
			},
		},
		Waterfall: []domain.Contribution{
			{Name: "Google Ads", Value: 300},
			{Name: "Meta Ads", Value: 200},
		},
	}
}

func loadedService(t *testing.T, ctrl *gomock.Controller, dataset *domain.Dataset, snapshots repository.SnapshotRepository) *Service {
	t.Helper()

	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(dataset, nil)

	service := NewService(testConfig(), loader, snapshots, []domain.Contribution{{Name: "Default", Value: 10}})
	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	return service
}

func assertDashboardError(t *testing.T, err error, target error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	var dashErr *DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, code, dashErr.Code)
}

func TestService_DatasetNotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(testConfig(), mocks.NewMockDatasetLoader(ctrl), nil, nil)

	calls := map[string]func() error{
		"channels":       func() error { _, err := service.ChannelSummary(""); return err },
		"correlation":    func() error { _, err := service.Correlation(""); return err },
		"waterfall":      func() error { _, err := service.Waterfall(); return err },
		"saturation":     func() error { _, err := service.Saturation("Google Ads"); return err },
		"monthly":        func() error { _, err := service.MonthlyTrend(domain.MonthlyFilter{}); return err },
		"year over year": func() error { _, err := service.YearOverYear(); return err },
		"ab tests":       func() error { _, err := service.ABTests(); return err },
		"report":         func() error { _, err := service.Report(); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assertDashboardError(t, call(), ErrDatasetNotLoaded, apiErrors.ErrDatasetNotLoaded)
		})
	}
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	dataset := testDataset()

	snapshots := repomocks.NewMockSnapshotRepository(ctrl)
	snapshots.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.SnapshotEntry) error {
			assert.Equal(t, "abc123", snapshot.ID)
			assert.Equal(t, []string{"Google Ads", "Meta Ads", "Organic Search"}, snapshot.Channels)
			assert.Equal(t, 600.0, snapshot.TotalRevenue)
			assert.Equal(t, 200.0, snapshot.TotalCost)
			assert.Len(t, snapshot.Records, 6)
			return nil
		})

	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(dataset, nil)

	service := NewService(testConfig(), loader, snapshots, nil)
	result, err := service.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "abc123", result.DatasetID)
	assert.Equal(t, uint64(42), result.Seed)
	assert.True(t, result.Archived)
}

func TestService_Refresh_ArchiveFailureKeepsDataset(t *testing.T) {
	ctrl := gomock.NewController(t)

	snapshots := repomocks.NewMockSnapshotRepository(ctrl)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	service := loadedService(t, ctrl, testDataset(), snapshots)

	summary, err := service.ChannelSummary(domain.MetricKindChannel)
	require.NoError(t, err)
	assert.Len(t, summary.Rows, 3)
}

func TestService_Refresh_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("boom"))

	service := NewService(testConfig(), loader, nil, nil)
	_, err := service.Refresh(context.Background())
	assertDashboardError(t, err, ErrLoadDataset, apiErrors.ErrInternalServer)
}

func TestService_ChannelSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	summary, err := service.ChannelSummary("")
	require.NoError(t, err)

	assert.Equal(t, domain.MetricKindChannel, summary.Kind)
	assert.Equal(t, 600.0, summary.TotalRevenue)
	assert.Equal(t, 200.0, summary.TotalCost)
	require.NotNil(t, summary.AggregateROAS)
	assert.Equal(t, 3.0, *summary.AggregateROAS)

	revenue := summary.Metrics[domain.MetricRevenue]
	require.NotNil(t, revenue)
	assert.Equal(t, 3, revenue.Count)
	assert.Equal(t, 200.0, revenue.Mean)

	// Organic Search não tem custo, então o ROAS só existe em duas linhas
	roas := summary.Metrics[domain.MetricROAS]
	require.NotNil(t, roas)
	assert.Equal(t, 2, roas.Count)
	assert.Equal(t, 2.5, roas.Mean)

	_, err = service.ChannelSummary("store")
	assertDashboardError(t, err, ErrInvalidKind, apiErrors.ErrInvalidRequest)
}

func TestService_Correlation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	matrix, err := service.Correlation(domain.MetricKindCampaign)
	require.NoError(t, err)

	require.Len(t, matrix.Values, len(domain.CorrelationMetrics))
	for i := range matrix.Values {
		assert.Equal(t, 1.0, matrix.Values[i][i])
		for j := range matrix.Values {
			assert.Equal(t, matrix.Values[i][j], matrix.Values[j][i])
			assert.False(t, math.IsNaN(matrix.Values[i][j]))
		}
	}

	r, ok := matrix.At(domain.MetricRevenue, domain.MetricCost)
	require.True(t, ok)
	assert.InDelta(t, 1, r, 1e-9)
}

func TestService_Waterfall(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("uses dataset contributions", func(t *testing.T) {
		service := loadedService(t, ctrl, testDataset(), nil)

		chart, err := service.Waterfall()
		require.NoError(t, err)
		assert.False(t, chart.UsedFallback)
		assert.Equal(t, 500.0, chart.Total)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		dataset := testDataset()
		dataset.Waterfall = nil
		service := loadedService(t, ctrl, dataset, nil)

		chart, err := service.Waterfall()
		require.NoError(t, err)
		assert.True(t, chart.UsedFallback)
		assert.Equal(t, 10.0, chart.Total)
	})
}

func TestService_Saturation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	analysis, err := service.Saturation("google-ads")
	require.NoError(t, err)
	assert.Equal(t, "Google Ads", analysis.Channel)
	require.NotNil(t, analysis.MostEfficient)
	assert.Equal(t, 0, analysis.MostEfficient.Index)

	_, err = service.Saturation("Pinterest")
	assertDashboardError(t, err, ErrChannelNotFound, apiErrors.ErrNotFound)
}

func TestService_Saturation_InvalidCurve(t *testing.T) {
	ctrl := gomock.NewController(t)
	dataset := testDataset()
	dataset.Curves["Meta Ads"] = []domain.CurvePoint{{Spend: 10, Revenue: 1}}
	service := loadedService(t, ctrl, dataset, nil)

	_, err := service.Saturation("Meta Ads")
	assertDashboardError(t, err, ErrInvalidData, apiErrors.ErrInsufficientData)
}

func TestService_MonthlyTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	aggregates, err := service.MonthlyTrend(domain.MonthlyFilter{})
	require.NoError(t, err)
	require.Len(t, aggregates, 2)
	assert.Equal(t, "Jan", aggregates[0].Month)
	assert.Equal(t, 75.0, aggregates[0].Values["revenue"])
	require.NotNil(t, aggregates[1].Change)
	assert.InDelta(t, 100, *aggregates[1].Change, 1e-9)

	aggregates, err = service.MonthlyTrend(domain.MonthlyFilter{Channel: "TikTok Ads"})
	require.NoError(t, err)
	assert.Empty(t, aggregates)
}

func TestService_YearOverYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	dataset := testDataset()
	service := loadedService(t, ctrl, dataset, nil)

	response, err := service.YearOverYear()
	require.NoError(t, err)

	assert.Equal(t, 1, response.Anomalies)
	assert.Equal(t, domain.AnomalySpike, response.Points[4].Anomaly)
	assert.Empty(t, dataset.YearOverYear[4].Anomaly)
}

func TestService_ABTests(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	results, err := service.ABTests()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Significant)
}

func TestService_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := loadedService(t, ctrl, testDataset(), nil)

	report, err := service.Report()
	require.NoError(t, err)

	assert.Equal(t, "abc123", report.DatasetID)
	assert.NotNil(t, report.Channels)
	assert.NotNil(t, report.Campaigns)
	assert.NotNil(t, report.Correlation)
	assert.NotNil(t, report.Waterfall)
	assert.Len(t, report.Monthly, 2)
	assert.Len(t, report.ABTests, 1)
}

func TestService_Report_SingleDataset(t *testing.T) {
	ctrl := gomock.NewController(t)

	first := testDataset()
	second := testDataset()
	second.ID = "def456"
	for i := range second.Channels {
		second.Channels[i].Revenue *= 2
		second.Channels[i].Derive()
	}

	wantRevenue := map[string]float64{first.ID: 600, second.ID: 1200}

	var calls atomic.Int64
	loader := mocks.NewMockDatasetLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (*domain.Dataset, error) {
		if calls.Add(1)%2 == 1 {
			return first, nil
		}
		return second, nil
	}).AnyTimes()

	service := NewService(testConfig(), loader, nil, nil)
	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	defer func() {
		close(stop)
		wg.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_, _ = service.Refresh(context.Background())
			}
		}
	}()

	for range 500 {
		report, err := service.Report()
		require.NoError(t, err)
		require.Equal(t, wantRevenue[report.DatasetID], report.Channels.TotalRevenue, "dataset %s", report.DatasetID)
	}
}

func TestService_Snapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("archive disabled", func(t *testing.T) {
		service := NewService(testConfig(), mocks.NewMockDatasetLoader(ctrl), nil, nil)

		_, err := service.Snapshots(context.Background(), 10)
		assertDashboardError(t, err, ErrArchiveDisabled, apiErrors.ErrFeatureDisabled)
	})

	t.Run("lists snapshots", func(t *testing.T) {
		snapshots := repomocks.NewMockSnapshotRepository(ctrl)
		snapshots.EXPECT().List(gomock.Any(), 10).Return([]*domain.SnapshotEntry{{ID: "a"}, {ID: "b"}}, nil)

		service := NewService(testConfig(), mocks.NewMockDatasetLoader(ctrl), snapshots, nil)
		entries, err := service.Snapshots(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("database error", func(t *testing.T) {
		snapshots := repomocks.NewMockSnapshotRepository(ctrl)
		snapshots.EXPECT().List(gomock.Any(), 10).Return(nil, errors.New("timeout"))

		service := NewService(testConfig(), mocks.NewMockDatasetLoader(ctrl), snapshots, nil)
		_, err := service.Snapshots(context.Background(), 10)
		assertDashboardError(t, err, ErrFetchSnapshots, apiErrors.ErrDatabaseOperation)
	})

	t.Run("snapshot not found", func(t *testing.T) {
		snapshots := repomocks.NewMockSnapshotRepository(ctrl)
		snapshots.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, repository.ErrSnapshotNotFound)

		service := NewService(testConfig(), mocks.NewMockDatasetLoader(ctrl), snapshots, nil)
		_, err := service.Snapshot(context.Background(), "missing")
		assertDashboardError(t, err, ErrSnapshotNotFound, apiErrors.ErrNotFound)
	})
}
