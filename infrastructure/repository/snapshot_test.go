package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestBuildInsertSnapshotQuery(t *testing.T) {
	snapshot := &domain.SnapshotEntry{
		ID:           "Ab3xYz",
		Seed:         42,
		GeneratedAt:  time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Channels:     []string{"Google Ads", "Email"},
		TotalRevenue: 1000.5,
		TotalCost:    250,
	}

	query, args, err := buildInsertSnapshotQuery(snapshot)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO dashboard_snapshots (id,seed,generated_at,channels,total_revenue,total_cost) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING", query)
	require.Len(t, args, 6)
	assert.Equal(t, "Ab3xYz", args[0])
	assert.Equal(t, int64(42), args[1])
	assert.IsType(t, (*pq.StringArray)(nil), args[3])
	assert.Equal(t, 1000.5, args[4])
}

func TestBuildInsertRecordsQuery(t *testing.T) {
	records := []domain.MetricRecord{
		{Name: "Google Ads", Kind: domain.MetricKindChannel, Revenue: 100, Cost: 50, Conversions: 3, Clicks: 40, Impressions: 900},
		{Name: "Google Ads - Brand", Kind: domain.MetricKindCampaign, Channel: "Google Ads", Revenue: 60, Cost: 20},
	}

	query, args, err := buildInsertRecordsQuery("Ab3xYz", records)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO snapshot_metric_records (snapshot_id,name,kind,channel,revenue,cost,conversions,clicks,impressions)")
	assert.Contains(t, query, "($10,$11,$12,$13,$14,$15,$16,$17,$18)")
	require.Len(t, args, 18)

	assert.Equal(t, "channel", args[2])
	assert.Equal(t, sql.NullString{}, args[3])
	assert.Equal(t, "campaign", args[11])
	assert.Equal(t, sql.NullString{String: "Google Ads", Valid: true}, args[12])
}

func TestBuildListSnapshotsQuery(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  string
	}{
		{"default limit", 0, "LIMIT 20"},
		{"custom limit", 5, "LIMIT 5"},
		{"capped limit", 1000, "LIMIT 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListSnapshotsQuery(tt.limit)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM dashboard_snapshots")
			assert.Contains(t, query, "ORDER BY generated_at DESC, created_at DESC")
			assert.Contains(t, query, tt.want)
			assert.Empty(t, args)
		})
	}
}
