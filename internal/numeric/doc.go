// Package numeric implements the two numeric primitives of numcalc,
// summation and ascending sort over float64 values, together with the
// operation registry used by the command-line front end.
//
// Both primitives are pure: they never retain or mutate their arguments.
// Sort is synchronous; callers that want a deferred handle use SortAsync
// or wrap any function with Async.
package numeric
