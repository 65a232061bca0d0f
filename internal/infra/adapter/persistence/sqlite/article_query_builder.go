// Package sqlite provides SQLite implementations of repository interfaces.
// It is the embedded backend used for local development and tests; queries
// go through sqlx so rows map onto tagged structs.
package sqlite

import (
	"strings"

	"newsdesk/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listings.
// The same clause feeds the COUNT and the SELECT so totals and pages agree.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause returns "" when filter is empty.
// tableAlias qualifies the columns when the query joins categories.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter, tableAlias string) (clause string, args []any) {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}

	var conditions []string
	if filter.CategoryID > 0 {
		conditions = append(conditions, prefix+"category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.Status != "" {
		conditions = append(conditions, prefix+"status = ?")
		args = append(args, string(filter.Status))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
