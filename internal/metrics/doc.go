// Package metrics records operation counters and latencies on a private
// Prometheus registry and samples runtime memory statistics.
package metrics
