package waterfall

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func assertSumMatchesTotal(t *testing.T, chart *domain.WaterfallChart) {
	t.Helper()

	sum := 0.0
	var total *domain.WaterfallSegment
	for i, s := range chart.Segments {
		if s.IsTotal {
			total = &chart.Segments[i]
			continue
		}
		sum += s.Value
	}

	require.NotNil(t, total)
	assert.True(t, sum == total.Value, "sum %v != total %v", sum, total.Value)
	assert.Equal(t, total.Value, chart.Total)
}

func TestPrepare(t *testing.T) {
	contributions := []domain.Contribution{
		{Name: "Google Ads", Value: 1200.5, Fill: "#4285f4"},
		{Name: "Meta Ads", Value: 800.25, Fill: "#1877f2"},
		{Name: "Email", Value: 150, Fill: "#10b981"},
	}

	chart, err := Prepare(contributions)
	require.NoError(t, err)
	require.Len(t, chart.Segments, 4)

	assert.Equal(t, 0.0, chart.Segments[0].Baseline)
	assert.Equal(t, 1200.5, chart.Segments[1].Baseline)
	assert.Equal(t, 2000.75, chart.Segments[2].Baseline)
	assert.Equal(t, "#10b981", chart.Segments[2].Fill)

	last := chart.Segments[len(chart.Segments)-1]
	assert.True(t, last.IsTotal)
	assert.Equal(t, TotalName, last.Name)
	assert.Equal(t, 0.0, last.Baseline)
	assert.Equal(t, 2150.75, last.Value)
	assert.False(t, chart.UsedFallback)

	assertSumMatchesTotal(t, chart)
}

func TestPrepare_SumInvariantWithFloatNoise(t *testing.T) {
	contributions := []domain.Contribution{
		{Name: "a", Value: 0.1},
		{Name: "b", Value: 0.2},
		{Name: "c", Value: 0.7},
		{Name: "d", Value: 1234.56},
		{Name: "e", Value: -300.33},
	}

	chart, err := Prepare(contributions)
	require.NoError(t, err)
	assert.InDelta(t, 934.33, chart.Total, 1e-9)

	assertSumMatchesTotal(t, chart)
}

func TestPrepare_FloatSumEqualsTotal(t *testing.T) {
	chart, err := Prepare([]domain.Contribution{{Name: "a", Value: 0.1}, {Name: "b", Value: 0.2}})
	require.NoError(t, err)

	sum := chart.Segments[0].Value + chart.Segments[1].Value
	assert.True(t, sum == chart.Total, "sum %v != total %v", sum, chart.Total)
	assert.True(t, chart.Segments[2].Value == chart.Total)
	assert.Equal(t, 0.1, chart.Segments[1].Baseline)
}

func TestPrepare_KeepsInputValues(t *testing.T) {
	chart, err := Prepare([]domain.Contribution{{Name: "a", Value: 1.234}, {Name: "b", Value: 2.345}})
	require.NoError(t, err)

	assert.Equal(t, 1.234, chart.Segments[0].Value)
	assert.Equal(t, 2.345, chart.Segments[1].Value)
	assert.Equal(t, 1.234, chart.Segments[1].Baseline)
	assertSumMatchesTotal(t, chart)
}

func TestPrepare_SmallValuesAreValid(t *testing.T) {
	chart, err := Prepare([]domain.Contribution{{Name: "a", Value: 0.004}, {Name: "b", Value: 0.003}})
	require.NoError(t, err)

	assert.False(t, chart.UsedFallback)
	assert.InDelta(t, 0.007, chart.Total, 1e-12)
	assertSumMatchesTotal(t, chart)
}

func TestPrepare_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		contributions []domain.Contribution
	}{
		{"empty", nil},
		{"nan value", []domain.Contribution{{Name: "a", Value: math.NaN()}}},
		{"infinite value", []domain.Contribution{{Name: "a", Value: 1}, {Name: "b", Value: math.Inf(1)}}},
		{"zero total", []domain.Contribution{{Name: "a", Value: 10}, {Name: "b", Value: -10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := Prepare(tt.contributions)
			assert.Nil(t, chart)
			assert.ErrorIs(t, err, ErrInvalidContributions)
		})
	}
}

func TestPrepareWithFallback(t *testing.T) {
	defaults := []domain.Contribution{
		{Name: "Paid", Value: 600},
		{Name: "Organic", Value: 400},
	}

	t.Run("valid input keeps original data", func(t *testing.T) {
		chart, err := PrepareWithFallback([]domain.Contribution{{Name: "x", Value: 5}}, defaults)
		require.NoError(t, err)
		assert.False(t, chart.UsedFallback)
		assert.Equal(t, 5.0, chart.Total)
	})

	t.Run("invalid input uses defaults", func(t *testing.T) {
		chart, err := PrepareWithFallback([]domain.Contribution{{Name: "x", Value: math.NaN()}}, defaults)
		require.NoError(t, err)
		assert.True(t, chart.UsedFallback)
		assert.Equal(t, 1000.0, chart.Total)
		assert.Len(t, chart.Segments, 3)
		assertSumMatchesTotal(t, chart)
	})

	t.Run("invalid defaults fail", func(t *testing.T) {
		_, err := PrepareWithFallback(nil, nil)
		assert.ErrorIs(t, err, ErrInvalidContributions)
	})
}
