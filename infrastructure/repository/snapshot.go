package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	snapshotsTable     = "dashboard_snapshots"
	snapshotRecordsTbl = "snapshot_metric_records"

	snapshotColumns = "id, seed, generated_at, channels, total_revenue, total_cost, created_at"
	recordColumns   = "name, kind, channel, revenue, cost, conversions, clicks, impressions"

	defaultSnapshotLimit = 20
	maxSnapshotLimit     = 100
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.SnapshotEntry) error
	List(ctx context.Context, limit int) ([]*domain.SnapshotEntry, error)
	GetByID(ctx context.Context, id string) (*domain.SnapshotEntry, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// Save grava o snapshot e as linhas de métricas na mesma transação.
// O ID é derivado da semente e da data, então um snapshot já arquivado é ignorado.
func (r *snapshotRepository) Save(ctx context.Context, snapshot *domain.SnapshotEntry) error {
	snapshotQuery, snapshotArgs, err := buildInsertSnapshotQuery(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, snapshotQuery, snapshotArgs...)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
			}
			return errors.Wrap(err, "erro ao inserir snapshot")
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "erro ao verificar inserção do snapshot")
		}

		if inserted == 0 || len(snapshot.Records) == 0 {
			return nil
		}

		recordsQuery, recordsArgs, err := buildInsertRecordsQuery(snapshot.ID, snapshot.Records)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, recordsQuery, recordsArgs...); err != nil {
			return errors.Wrap(err, "erro ao inserir métricas do snapshot")
		}

		return nil
	})
}

// List retorna os snapshots mais recentes, sem as linhas de métricas
func (r *snapshotRepository) List(ctx context.Context, limit int) ([]*domain.SnapshotEntry, error) {
	query, args, err := buildListSnapshotsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	snapshots := make([]*domain.SnapshotEntry, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear snapshot")
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) GetByID(ctx context.Context, id string) (*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, "erro ao escanear snapshot")
	}

	records, err := r.listRecords(ctx, id)
	if err != nil {
		return nil, err
	}
	snapshot.Records = records

	return snapshot, nil
}

func (r *snapshotRepository) listRecords(ctx context.Context, snapshotID string) ([]domain.MetricRecord, error) {
	query, args, err := squirrel.
		Select(recordColumns).
		From(snapshotRecordsTbl).
		Where(squirrel.Eq{"snapshot_id": snapshotID}).
		OrderBy("kind ASC", "revenue DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	records := make([]domain.MetricRecord, 0)
	for rows.Next() {
		var record domain.MetricRecord
		var channel sql.NullString

		if err := rows.Scan(
			&record.Name,
			&record.Kind,
			&channel,
			&record.Revenue,
			&record.Cost,
			&record.Conversions,
			&record.Clicks,
			&record.Impressions,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear métrica do snapshot")
		}

		record.Channel = channel.String
		record.Derive()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.SnapshotEntry, error) {
	snapshot := &domain.SnapshotEntry{}
	var seed int64

	err := row.Scan(
		&snapshot.ID,
		&seed,
		&snapshot.GeneratedAt,
		pq.Array(&snapshot.Channels),
		&snapshot.TotalRevenue,
		&snapshot.TotalCost,
		&snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Seed = uint64(seed)
	return snapshot, nil
}

func buildInsertSnapshotQuery(snapshot *domain.SnapshotEntry) (string, []interface{}, error) {
	return squirrel.
		Insert(snapshotsTable).
		Columns("id", "seed", "generated_at", "channels", "total_revenue", "total_cost").
		Values(
			snapshot.ID,
			int64(snapshot.Seed),
			snapshot.GeneratedAt,
			pq.Array(snapshot.Channels),
			snapshot.TotalRevenue,
			snapshot.TotalCost,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildInsertRecordsQuery(snapshotID string, records []domain.MetricRecord) (string, []interface{}, error) {
	query := squirrel.
		Insert(snapshotRecordsTbl).
		Columns("snapshot_id", "name", "kind", "channel", "revenue", "cost", "conversions", "clicks", "impressions").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		var channel sql.NullString
		if record.Channel != "" {
			channel = sql.NullString{String: record.Channel, Valid: true}
		}

		query = query.Values(
			snapshotID,
			record.Name,
			string(record.Kind),
			channel,
			record.Revenue,
			record.Cost,
			record.Conversions,
			record.Clicks,
			record.Impressions,
		)
	}

	return query.ToSql()
}

func buildListSnapshotsQuery(limit int) (string, []interface{}, error) {
	if limit <= 0 {
		limit = defaultSnapshotLimit
	}
	if limit > maxSnapshotLimit {
		limit = maxSnapshotLimit
	}

	return squirrel.
		Select(snapshotColumns).
		From(snapshotsTable).
		OrderBy("generated_at DESC", "created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
