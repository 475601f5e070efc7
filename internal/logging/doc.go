// Package logging provides a unified logging interface for numcalc.
// Components log through the Logger interface; ZerologAdapter writes
// structured JSON and NopLogger discards everything.
package logging
