package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func serverConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Server:  config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:    config.Auth{Enabled: authEnabled, Secret: "test-secret"},
		Metrics: config.Metrics{Enabled: true, Path: "/metrics"},
	}
}

func TestServer_AuthDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().ABTests().Return([]domain.ABTestResult{}, nil)

	srv, err := New(serverConfig(false), service, nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/ab-tests", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/v1/dashboard/ab-tests"`)
}

func TestServer_AuthEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := serverConfig(true)
	authenticator := authenticating.NewService(cfg)

	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().ABTests().Return([]domain.ABTestResult{}, nil)

	srv, err := New(cfg, service, authenticator, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/ab-tests", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	viewerToken, err := authenticator.GenerateToken("u1", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/ab-tests", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/cron/refresh/run", nil)
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AuthEnabledWithoutAuthenticator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := New(serverConfig(true), mocks.NewMockDashboarder(ctrl), nil, nil)
	assert.Error(t, err)
}
