package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por *sql.DB e por *Connection
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
