package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/exporter"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta; falhas de escrita só podem ser registradas
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("dashboard: failed to encode response")
	}
}

// writeServiceError traduz os erros do caso de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusFor(dashErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("dashboard: request failed")
		} else {
			logger.WithError(err).Warn("dashboard: request rejected")
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	logger.WithError(err).Error("dashboard: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func GetChannelSummary(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.MetricKind(r.URL.Query().Get("kind"))
		logger.WithField("kind", kind).Info("dashboard: fetching channel summary")

		summary, err := service.ChannelSummary(kind)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, summary)
	})
}

func GetCorrelation(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kind := domain.MetricKind(r.URL.Query().Get("kind"))
		matrix, err := service.Correlation(kind)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, matrix)
	})
}

func GetWaterfall(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chart, err := service.Waterfall()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if chart.UsedFallback {
			logger.Warn("dashboard: waterfall rendered from default contributions")
		}

		writeJSON(w, logger, chart)
	})
}

func GetSaturation(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		channel := httprouter.ParamsFromContext(r.Context()).ByName("channel")
		if channel == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "channel is required", nil)
			return
		}

		logger.WithField("channel", channel).Info("dashboard: analysing saturation curve")

		analysis, err := service.Saturation(channel)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, analysis)
	})
}

func GetMonthlyTrend(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filter := domain.MonthlyFilter{
			Channel:     query.Get("channel"),
			Factor:      query.Get("factor"),
			ChangeField: query.Get("field"),
		}

		logger.WithFields(log.Fields{
			"channel": filter.Channel,
			"factor":  filter.Factor,
			"field":   filter.ChangeField,
		}).Info("dashboard: aggregating monthly trend")

		aggregates, err := service.MonthlyTrend(filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, aggregates)
	})
}

func GetYearOverYear(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.YearOverYear()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, response)
	})
}

func GetABTests(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		results, err := service.ABTests()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, results)
	})
}

func ExportDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Report()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		workbook, err := exporter.Build(report)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build workbook")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to build workbook", nil)
			return
		}
		defer workbook.Close()

		w.Header().Set("Content-Type", exporter.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+exporter.FileName(report)+`"`)

		if _, err := workbook.WriteTo(w); err != nil {
			logger.WithError(err).Error("dashboard: failed to write workbook")
			return
		}

		logger.WithField("dataset_id", report.DatasetID).Info("dashboard: workbook exported")
	})
}

func ListSnapshots(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a non-negative integer", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.Snapshots(r.Context(), limit)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, snapshots)
	})
}

func GetSnapshot(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		snapshot, err := service.Snapshot(r.Context(), id)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, snapshot)
	})
}
