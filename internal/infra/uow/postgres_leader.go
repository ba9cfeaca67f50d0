package uow

import (
	"context"
	"errors"
	"log/slog"

	"enrollment-waitlist/internal/infra"
	"enrollment-waitlist/internal/infra/query"
	"enrollment-waitlist/internal/infra/readstore"
	"enrollment-waitlist/internal/infra/repository"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	query.DBTX
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// PostgresLeader is the unit of work of one leader database.
type PostgresLeader struct {
	id   string
	pool TxBeginner
	q    *query.Queries
}

func NewPostgresLeader(id string, pool TxBeginner, q *query.Queries) *PostgresLeader {
	return &PostgresLeader{
		id:   id,
		pool: pool,
		q:    q,
	}
}

func (l *PostgresLeader) ID() string {
	return l.id
}

// Within never retries: a failed step is reported and the caller decides.
// ReadCommitted prevents dirty reads while allowing concurrent writes.
func (l *PostgresLeader) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return infra.WrapRepoErr("begin transaction on leader "+l.id, errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "leader", l.id, "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: l.q}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("commit transaction on leader "+l.id, errs.Mark(err, errTransactionCommit))
	}
	return nil
}

func (l *PostgresLeader) Reads() shared.Reads {
	return readstore.NewLeaderReadStore(l.q, l.pool)
}

type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	// Lazy-initialized repositories
	reads      shared.Reads
	records    shared.RecordRepository
	courses    shared.CourseRepository
	tombstones shared.TombstoneRepository
}

func (t *pgTx) Reads() shared.Reads {
	if t.reads == nil {
		t.reads = readstore.NewLeaderReadStore(t.q, t.dbtx)
	}
	return t.reads
}

func (t *pgTx) Records() shared.RecordRepository {
	if t.records == nil {
		t.records = repository.NewRecordRepository(t.q, t.dbtx)
	}
	return t.records
}

func (t *pgTx) Courses() shared.CourseRepository {
	if t.courses == nil {
		t.courses = repository.NewCourseRepository(t.q, t.dbtx)
	}
	return t.courses
}

func (t *pgTx) Tombstones() shared.TombstoneRepository {
	if t.tombstones == nil {
		t.tombstones = repository.NewTombstoneRepository(t.q, t.dbtx)
	}
	return t.tombstones
}
