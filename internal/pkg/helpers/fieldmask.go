package helpers

import (
	"fmt"
	"strings"

	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

// UpdateBuilder assembles a parameterized partial UPDATE statement from a set
// of (column, value) pairs. Column names are checked against a fixed
// allow-list given at construction; a column outside the list is rejected.
// Request payloads never contribute column names, only values.
type UpdateBuilder struct {
	table   string
	allowed map[string]struct{}
	columns []string
	values  []interface{}
}

// NewUpdateBuilder creates a builder for the given table and column allow-list.
func NewUpdateBuilder(table string, allowedColumns ...string) *UpdateBuilder {
	allowed := make(map[string]struct{}, len(allowedColumns))
	for _, c := range allowedColumns {
		allowed[c] = struct{}{}
	}
	return &UpdateBuilder{
		table:   table,
		allowed: allowed,
	}
}

// Set records a column assignment. Returns an error if the column is not in
// the allow-list.
func (b *UpdateBuilder) Set(column string, value interface{}) error {
	if _, ok := b.allowed[column]; !ok {
		return fmt.Errorf("column %q is not updatable", column)
	}
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return nil
}

// SetIfPresent records a column assignment only when the value is a non-empty
// string. Absent fields are left untouched by the resulting statement.
func (b *UpdateBuilder) SetIfPresent(column, value string) error {
	if value == "" {
		return nil
	}
	return b.Set(column, value)
}

// Empty reports whether no assignments have been recorded.
func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// Build returns the UPDATE statement and its ordered arguments, keyed by the
// given column. Returns apperrors.ErrNoFieldsToUpdate when nothing was set.
func (b *UpdateBuilder) Build(keyColumn string, keyValue interface{}) (string, []interface{}, error) {
	if b.Empty() {
		return "", nil, apperrors.ErrNoFieldsToUpdate
	}

	assignments := make([]string, len(b.columns))
	for i, c := range b.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		b.table, strings.Join(assignments, ", "), keyColumn, len(b.columns)+1)

	args := append(append([]interface{}{}, b.values...), keyValue)
	return query, args, nil
}
