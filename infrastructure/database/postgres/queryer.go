package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito pela conexão; dentro de transações use *sql.Tx diretamente
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
