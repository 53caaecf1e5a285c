// Package resilience provides fault tolerance patterns for the
// application's database access.
//
// It includes a gobreaker-based circuit breaker that sheds load when the
// database is failing, and retry logic with exponential backoff and
// jitter for transient startup failures.
//
// Usage:
//
//	dbcb := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := dbcb.QueryContext(ctx, query, args...)
//
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    return db.Ping()
//	})
package resilience
