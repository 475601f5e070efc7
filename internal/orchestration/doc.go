// Package orchestration coordinates concurrent execution of numeric operations
// and aggregates their results. It decouples business logic from
// presentation via the ProgressReporter, ResultPresenter and ErrorHandler
// interfaces.
package orchestration
