package database

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"notes-api/models"
)

const (
	// DefaultListLimit applies when a list request carries no usable limit.
	DefaultListLimit = 10
	// MaxListLimit bounds every list result regardless of the requested limit.
	MaxListLimit = 100
)

var noteColumns = []string{"id", "title", "description", "completed", "created_date"}

// ClampLimit maps a requested page size onto [1, MaxListLimit].
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// ClampSkip treats a negative offset as zero.
func ClampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

// notePredicates returns one clause per present filter. The caller joins
// them with a single AND.
func notePredicates(params models.ListParams) []sq.Sqlizer {
	var clauses []sq.Sqlizer

	if params.Completed != nil {
		clauses = append(clauses, sq.Eq{"completed": *params.Completed})
	}

	// Only the empty string means "no search"; whitespace is matched as given.
	if params.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(params.Search)) + "%"
		clauses = append(clauses, sq.Or{
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(description) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return clauses
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

func (r *Repository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.placeholder())
}

func (r *Repository) listQuery(params models.ListParams) sq.SelectBuilder {
	query := r.builder().
		Select(noteColumns...).
		From("notes").
		OrderBy("created_date DESC", "id DESC").
		Limit(uint64(ClampLimit(params.Limit))).
		Offset(uint64(ClampSkip(params.Skip)))

	if clauses := notePredicates(params); len(clauses) > 0 {
		query = query.Where(sq.And(clauses))
	}
	return query
}

func (r *Repository) countQuery(params models.ListParams) sq.SelectBuilder {
	query := r.builder().Select("COUNT(*)").From("notes")
	if clauses := notePredicates(params); len(clauses) > 0 {
		query = query.Where(sq.And(clauses))
	}
	return query
}
