package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/analytics/stats"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/exporter"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestRouter(service dashboarding.Dashboarder, cron CronJobServices) http.Handler {
	guard := middleware.NewRoleGuard(false)
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Dashboard(service, guard)...),
		router.WithRoutes(Snapshots(service, guard)...),
		router.WithRoutes(CronJobs(cron, guard)...),
	)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetChannelSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	h := newTestRouter(service, CronJobServices{})

	roas := 3.0
	service.EXPECT().ChannelSummary(domain.MetricKindCampaign).Return(&domain.ChannelSummary{
		Kind:          domain.MetricKindCampaign,
		TotalRevenue:  600,
		TotalCost:     200,
		AggregateROAS: &roas,
	}, nil)

	rec := serve(h, http.MethodGet, "/v1/dashboard/channels?kind=campaign")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var summary domain.ChannelSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 600.0, summary.TotalRevenue)
	require.NotNil(t, summary.AggregateROAS)
	assert.Equal(t, 3.0, *summary.AggregateROAS)
}

func TestDashboardHandlers_ServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		target     string
		setup      func(m *mocks.MockDashboarder)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "dataset não carregado",
			target: "/v1/dashboard/waterfall",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().Waterfall().Return(nil, dashboarding.NewDashboardError(dashboarding.ErrDatasetNotLoaded, apiErrors.ErrDatasetNotLoaded, ""))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrDatasetNotLoaded,
		},
		{
			name:   "canal desconhecido",
			target: "/v1/dashboard/saturation/pinterest",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().Saturation("pinterest").Return(nil, dashboarding.NewDashboardError(dashboarding.ErrChannelNotFound, apiErrors.ErrNotFound, "pinterest"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
		{
			name:   "tipo inválido",
			target: "/v1/dashboard/correlation?kind=store",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().Correlation(domain.MetricKind("store")).Return(nil, dashboarding.NewDashboardError(dashboarding.ErrInvalidKind, apiErrors.ErrInvalidRequest, "store"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "arquivo desabilitado",
			target: "/v1/snapshots",
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().Snapshots(gomock.Any(), 0).Return(nil, dashboarding.NewDashboardError(dashboarding.ErrArchiveDisabled, apiErrors.ErrFeatureDisabled, ""))
			},
			wantStatus: http.StatusNotImplemented,
			wantCode:   apiErrors.ErrFeatureDisabled,
		},
		{
			name:       "limite inválido",
			target:     "/v1/snapshots?limit=abc",
			setup:      func(m *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rec := serve(newTestRouter(service, CronJobServices{}), http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestGetMonthlyTrend_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		MonthlyTrend(domain.MonthlyFilter{Channel: "Google Ads", Factor: "seasonal", ChangeField: "cost"}).
		Return([]domain.MonthlyAggregate{{Month: "Jan", Count: 1}}, nil)

	rec := serve(newTestRouter(service, CronJobServices{}), http.MethodGet, "/v1/dashboard/monthly?channel=Google+Ads&factor=seasonal&field=cost")
	require.Equal(t, http.StatusOK, rec.Code)

	var aggregates []domain.MonthlyAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &aggregates))
	require.Len(t, aggregates, 1)
	assert.Equal(t, "Jan", aggregates[0].Month)
}

func TestListSnapshots_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().Snapshots(gomock.Any(), 5).Return([]*domain.SnapshotEntry{{ID: "a"}}, nil)
	service.EXPECT().Snapshot(gomock.Any(), "a").Return(&domain.SnapshotEntry{ID: "a", Seed: 42, TotalRevenue: 1500}, nil)

	h := newTestRouter(service, CronJobServices{})

	rec := serve(h, http.MethodGet, "/v1/snapshots?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/v1/snapshots/a")
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.SnapshotEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, uint64(42), snapshot.Seed)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "totalRevenue")
	assert.Contains(t, body, "generatedAt")
	assert.Contains(t, body, "createdAt")
	assert.NotContains(t, body, "total_revenue")
}

func TestExportDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().Report().Return(&domain.DashboardReport{
		DatasetID:   "abc123",
		GeneratedAt: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Correlation: &stats.Matrix{Metrics: []string{"revenue"}, Values: [][]float64{{1}}},
	}, nil)

	rec := serve(newTestRouter(service, CronJobServices{}), http.MethodGet, "/v1/dashboard/export")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exporter.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "dashboard-20240630-abc123.xlsx")
	// arquivos XLSX são zip e começam com "PK"
	assert.Equal(t, "PK", rec.Body.String()[:2])
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := serve(newTestRouter(mocks.NewMockDashboarder(ctrl), CronJobServices{}), http.MethodGet, "/healthcheck")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body healthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.GreaterOrEqual(t, body.UptimeSeconds, 0.0)

	_, err := time.Parse(time.RFC3339, body.Time)
	assert.NoError(t, err)
}
