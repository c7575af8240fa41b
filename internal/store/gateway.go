package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Filter is a single-field equality predicate. It is the only query shape
// the gateway supports besides full-table scans.
type Filter struct {
	Field string
	Value any
}

// Error codes reported by the store boundary.
const (
	CodeNoRows          = "no_rows"
	CodeUniqueViolation = "unique_violation"
	CodeQueryFailed     = "query_failed"
	CodeExecFailed      = "exec_failed"
)

// Error is the structured failure every gateway operation reports. Callers
// check the code instead of parsing driver errors.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: [%s] %s", e.Code, e.Message)
}

// IsConflict reports whether err is a unique-constraint violation.
func IsConflict(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == CodeUniqueViolation
}

// classify wraps a driver error into a store Error. Postgres 23505 maps to
// the conflict code so callers can tell duplicates from other failures.
func classify(code string, err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &Error{Code: CodeUniqueViolation, Message: pgErr.Message}
	}
	return &Error{Code: code, Message: err.Error()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// fetchAll runs an unfiltered scan over one table.
func fetchAll[T any](ctx context.Context, db *sql.DB, table, columns string, scan func(rowScanner) (T, error)) ([]T, error) {
	return queryRows(ctx, db, scan, fmt.Sprintf(`SELECT %s FROM %s`, columns, table))
}

// fetchAllWhere runs an equality-filtered scan over one table.
func fetchAllWhere[T any](ctx context.Context, db *sql.DB, table, columns string, f Filter, orderBy string, scan func(rowScanner) (T, error)) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columns, table, f.Field)
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return queryRows(ctx, db, scan, query, f.Value)
}

func queryRows[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(CodeQueryFailed, err)
	}
	defer rows.Close()
	var res []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, classify(CodeQueryFailed, err)
		}
		res = append(res, v)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(CodeQueryFailed, err)
	}
	return res, nil
}

// fetchOne runs a single-row equality lookup. Absence is a normal outcome
// and comes back as (nil, nil), never as an error.
func fetchOne[T any](ctx context.Context, db *sql.DB, table, columns string, f Filter, scan func(rowScanner) (T, error)) (*T, error) {
	row := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columns, table, f.Field), f.Value)
	v, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(CodeQueryFailed, err)
	}
	return &v, nil
}

// insertRow writes one row. cols and vals are positional pairs.
func insertRow(ctx context.Context, db *sql.DB, table string, cols []string, vals []any) error {
	placeholders := make([]string, len(vals))
	for i := range vals {
		placeholders[i] = "$" + itoa(i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := db.ExecContext(ctx, query, vals...); err != nil {
		return classify(CodeExecFailed, err)
	}
	return nil
}

// updateRows applies a partial update to every row matching the filter and
// reports how many rows matched. Zero means the row did not exist; callers
// that need create semantics must take an explicit insert path.
func updateRows(ctx context.Context, db *sql.DB, table string, f Filter, changes map[string]any) (int64, error) {
	if len(changes) == 0 {
		return 0, nil
	}
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for _, k := range keys {
		sets = append(sets, k+" = $"+itoa(len(args)+1))
		args = append(args, changes[k])
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%s`,
		table, strings.Join(sets, ", "), f.Field, itoa(len(args)+1))
	args = append(args, f.Value)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(CodeExecFailed, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, classify(CodeExecFailed, err)
	}
	return n, nil
}

// put adds a column change when the field is set.
func put[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

func itoa(i int) string { return fmt.Sprintf("%d", i) }
