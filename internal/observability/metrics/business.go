package metrics

import (
	"database/sql"
	"time"

	"newsdesk/internal/domain/entity"
)

// RecordMutation records the outcome and duration of an admin write.
func RecordMutation(entityName, op string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = entity.KindOf(err).String()
	}
	MutationsTotal.WithLabelValues(entityName, op, outcome).Inc()
	MutationDuration.WithLabelValues(entityName, op).Observe(duration.Seconds())
}

// UpdateArticlesTotal sets the article gauges.
func UpdateArticlesTotal(published, draft int64) {
	ArticlesTotal.WithLabelValues(string(entity.StatusPublished)).Set(float64(published))
	ArticlesTotal.WithLabelValues(string(entity.StatusDraft)).Set(float64(draft))
}

// UpdateCategoriesTotal sets the category gauge.
func UpdateCategoriesTotal(count int64) {
	CategoriesTotal.Set(float64(count))
}

// RecordDBQuery records how long a database operation took.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBPoolStats copies connection pool statistics into the gauges.
func UpdateDBPoolStats(stats sql.DBStats) {
	DBConnectionsActive.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}
