// Package sqlstore implements storage.Store on top of database/sql.
// The SQLite and PostgreSQL backends share this implementation and differ
// only in their Dialect and schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minions-03/billing-system/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Dialect captures the SQL differences between backends.
type Dialect struct {
	// Name identifies the backend in logs and errors.
	Name string

	// Numbered placeholders ($1, $2, ...) instead of '?'.
	Numbered bool

	// ForUpdate is appended to row-locking SELECTs. Empty for backends that
	// serialise writers some other way.
	ForUpdate string

	// Lower names the SQL function that folds text to lower case for
	// searches. Empty means LOWER.
	Lower string

	// IsConflict reports whether err is a unique violation, serialization
	// failure or similar error that a retry could resolve.
	IsConflict func(err error) bool
}

// Store implements storage.Store using database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// New wraps an open database handle. The schema must already exist.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, now: time.Now}
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InTx runs fn inside a transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	if err := fn(&txn{tx: tx, store: s}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.wrap(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// q rewrites a '?'-placeholder query for the store's dialect.
func (s *Store) q(query string) string {
	if !s.dialect.Numbered {
		return query
	}
	return Rebind(query)
}

// wrap tags retryable errors with storage.ErrConflict.
func (s *Store) wrap(err error) error {
	if err != nil && s.dialect.IsConflict != nil && s.dialect.IsConflict(err) {
		return fmt.Errorf("%w: %v", storage.ErrConflict, err)
	}
	return err
}

// lower wraps expr in the dialect's case-folding function.
func (s *Store) lower(expr string) string {
	fn := s.dialect.Lower
	if fn == "" {
		fn = "LOWER"
	}
	return fn + "(" + expr + ")"
}

// Rebind converts '?' placeholders to $1, $2, ...
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(", ?", n)
}

// escapeLike escapes LIKE wildcards so s matches literally. Queries using it
// must declare ESCAPE '\'.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// toMinor converts a money amount to integer paise.
func toMinor(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// fromMinor converts integer paise to a money amount.
func fromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}

func fromUnix(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
