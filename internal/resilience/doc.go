// Package resilience groups the fault tolerance helpers used around the database
// and the message broker.
//
//   - circuitbreaker wraps every repository statement so a failing database is
//     shed quickly instead of piling up blocked requests
//   - retry applies exponential backoff with jitter to startup connections
//
// Writes issued by the mutation pipeline are never retried; a failed write is
// reported to the caller as is.
//
// Usage Example:
//
//	breaker := circuitbreaker.NewDB(sqlDB, db.BreakerConfig())
//	articles := postgres.NewArticleRepo(breaker)
//
//	err := retry.WithBackoff(ctx, retry.StartupConfig("database"), func() error {
//	    return ping(ctx)
//	})
package resilience
