package rss_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the repository uses, so pgxmock can stand in for it.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type RSSDBRepository struct {
	pool PgxIface
}

func NewRSSDBRepositoryWithPool(pool PgxIface) *RSSDBRepository {
	return &RSSDBRepository{pool: pool}
}

func (r *RSSDBRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
