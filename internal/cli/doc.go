// Package cli implements the terminal front end of numcalc: progress
// display, result presentation, file output, shell completion and the
// interactive REPL.
package cli
