package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskward/taskward/core"
)

// Adapter implements core.Storage on top of a pgx connection pool.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
