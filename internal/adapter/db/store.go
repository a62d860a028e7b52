package db

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// builder returns a statement builder for the driver's dialect.
func builder(drv dialect.Driver) *entsql.DialectBuilder {
	return entsql.Dialect(drv.Dialect())
}

// withTx runs fn inside a transaction. fn must only use the supplied tx.
func withTx(ctx context.Context, drv dialect.Driver, fn func(tx dialect.Tx) error) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func execStmt(ctx context.Context, q dialect.ExecQuerier, stmt entsql.Querier) error {
	query, args := stmt.Query()
	return mapConstraintError(q.Exec(ctx, query, args, nil))
}

// queryEach runs the selector and calls scan once per row.
func queryEach(ctx context.Context, q dialect.ExecQuerier, stmt entsql.Querier, scan func(rows *entsql.Rows) error) error {
	query, args := stmt.Query()
	rows := &entsql.Rows{}
	if err := q.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// queryOne is queryEach for a single row. It returns core.ErrNotFound when
// the selector matches nothing.
func queryOne(ctx context.Context, q dialect.ExecQuerier, stmt entsql.Querier, scan func(rows *entsql.Rows) error) error {
	found := false
	err := queryEach(ctx, q, stmt, func(rows *entsql.Rows) error {
		if found {
			return nil
		}
		found = true
		return scan(rows)
	})
	if err != nil {
		return err
	}
	if !found {
		return core.ErrNotFound
	}
	return nil
}

func mapConstraintError(err error) error {
	switch {
	case err == nil:
		return nil
	case sqlgraph.IsUniqueConstraintError(err):
		return fmt.Errorf("%w: %v", core.ErrConflict, err)
	case sqlgraph.IsForeignKeyConstraintError(err):
		return fmt.Errorf("%w: referenced record does not exist", core.ErrValidation)
	default:
		return err
	}
}
