// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/stock-count/count"
)

// Store is the SQL-backed snapshot provider and reconciliation record store.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

var (
	_ count.SnapshotProvider = (*Store)(nil)
	_ count.RecordStore      = (*Store)(nil)
)

func NewStore(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", count.ErrStorageUnavailable, op, err)
}

// Snapshot returns every product with its recorded stock, ordered by id.
func (s *Store) Snapshot(ctx context.Context) ([]count.ProductRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, code, description, category, stock
		FROM product
		ORDER BY id
	`)
	if err != nil {
		return nil, unavailable("query products", err)
	}
	defer rows.Close()

	products := []count.ProductRef{}
	for rows.Next() {
		var p count.ProductRef
		if err := rows.Scan(&p.ID, &p.Code, &p.Description, &p.Category, &p.Recorded); err != nil {
			return nil, unavailable("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate products", err)
	}

	return products, nil
}

// UpsertProduct inserts a product or overwrites its fields and stock.
func (s *Store) UpsertProduct(ctx context.Context, p count.ProductRef) error {
	var query string
	switch s.dialect {
	case MySQL:
		query = `
			INSERT INTO product (id, code, description, category, stock)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				code = VALUES(code), description = VALUES(description),
				category = VALUES(category), stock = VALUES(stock)`
	default:
		query = `
			INSERT INTO product (id, code, description, category, stock)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				code = excluded.code, description = excluded.description,
				category = excluded.category, stock = excluded.stock`
	}

	_, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), p.ID, p.Code, p.Description, p.Category, p.Recorded)
	if err != nil {
		return fmt.Errorf("failed to upsert product %d: %w", p.ID, err)
	}
	return nil
}

// Create writes the record and its details in one transaction and
// returns the generated id. Any id already set on rec is ignored.
func (s *Store) Create(ctx context.Context, rec count.Record) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	var note sql.NullString
	if rec.Note != "" {
		note = sql.NullString{String: rec.Note, Valid: true}
	}

	_, err = tx.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO reconciliation (id, counted_at, responsible, has_differences, note)
		VALUES (?, ?, ?, ?, ?)
	`), id, rec.Timestamp.UTC(), rec.Operator, rec.HasDifferences, note)
	if err != nil {
		return "", unavailable("insert reconciliation", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.dialect.Rebind(`
		INSERT INTO reconciliation_detail (
			reconciliation_id, line_no, product_id, code, description, category,
			recorded_quantity, physical_quantity, variance, observation
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return "", unavailable("prepare detail insert", err)
	}
	defer stmt.Close()

	for i, d := range rec.Details {
		_, err := stmt.ExecContext(ctx, id, i, d.ProductID, d.Code, d.Description, d.Category,
			d.Recorded, d.Physical, d.Variance, d.Observation)
		if err != nil {
			return "", unavailable(fmt.Sprintf("insert detail for product %d", d.ProductID), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", unavailable("commit reconciliation", err)
	}

	return id, nil
}

// Get loads a record with its details in count order.
func (s *Store) Get(ctx context.Context, id string) (count.Record, error) {
	var rec count.Record
	var note sql.NullString
	err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
		SELECT id, counted_at, responsible, has_differences, note
		FROM reconciliation
		WHERE id = ?
	`), id).Scan(&rec.ID, &rec.Timestamp, &rec.Operator, &rec.HasDifferences, &note)
	if errors.Is(err, sql.ErrNoRows) {
		return count.Record{}, fmt.Errorf("%w: %s", count.ErrNotFound, id)
	}
	if err != nil {
		return count.Record{}, unavailable("query reconciliation", err)
	}
	rec.Note = note.String
	rec.Timestamp = rec.Timestamp.UTC()

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(`
		SELECT product_id, code, description, category,
		       recorded_quantity, physical_quantity, variance, observation
		FROM reconciliation_detail
		WHERE reconciliation_id = ?
		ORDER BY line_no
	`), id)
	if err != nil {
		return count.Record{}, unavailable("query reconciliation details", err)
	}
	defer rows.Close()

	rec.Details = []count.Detail{}
	for rows.Next() {
		var d count.Detail
		if err := rows.Scan(&d.ProductID, &d.Code, &d.Description, &d.Category,
			&d.Recorded, &d.Physical, &d.Variance, &d.Observation); err != nil {
			return count.Record{}, unavailable("scan reconciliation detail", err)
		}
		rec.Details = append(rec.Details, d)
	}
	if err := rows.Err(); err != nil {
		return count.Record{}, unavailable("iterate reconciliation details", err)
	}

	return rec, nil
}

// List returns summaries within the filter bounds, most recent first.
func (s *Store) List(ctx context.Context, filter count.ListFilter) ([]count.RecordSummary, error) {
	var where []string
	var args []any
	if filter.From != nil {
		where = append(where, "counted_at >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		where = append(where, "counted_at < ?")
		args = append(args, filter.To.UTC())
	}

	query := `SELECT id, counted_at, has_differences, note FROM reconciliation`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY counted_at DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, unavailable("query reconciliations", err)
	}
	defer rows.Close()

	summaries := []count.RecordSummary{}
	for rows.Next() {
		var sum count.RecordSummary
		var note sql.NullString
		if err := rows.Scan(&sum.ID, &sum.Timestamp, &sum.HasDifferences, &note); err != nil {
			return nil, unavailable("scan reconciliation", err)
		}
		sum.Note = note.String
		sum.Timestamp = sum.Timestamp.UTC()
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate reconciliations", err)
	}

	return summaries, nil
}
