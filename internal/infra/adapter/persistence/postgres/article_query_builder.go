package postgres

import (
	"fmt"
	"strings"

	"newsdesk/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listings in PostgreSQL.
// This builder is shared between COUNT and SELECT queries to eliminate duplication.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and its arguments for filter.
// Placeholders are numbered from $1. Returns an empty clause when filter is empty.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.ArticleFilter, tableAlias string) (clause string, args []any) {
	col := func(name string) string {
		if tableAlias != "" {
			return tableAlias + "." + name
		}
		return name
	}

	var conditions []string
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("category_id"), len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col("status"), len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
