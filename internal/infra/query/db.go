// Package query holds the SQL statements every leader runs. Methods take the
// DBTX explicitly so one Queries value serves pools and transactions alike.
package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const now = `SELECT clock_timestamp()`

// Now reads the wall clock of the server, not the transaction start time.
func (q *Queries) Now(ctx context.Context, db DBTX) (pgtype.Timestamptz, error) {
	row := db.QueryRow(ctx, now)
	var ts pgtype.Timestamptz
	err := row.Scan(&ts)
	return ts, err
}

const ping = `SELECT 1`

func (q *Queries) Ping(ctx context.Context, db DBTX) error {
	row := db.QueryRow(ctx, ping)
	var one int32
	return row.Scan(&one)
}
