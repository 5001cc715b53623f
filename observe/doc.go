// Package observe provides optional telemetry for URL classification:
// OpenTelemetry metrics for check outcomes and memo-store traffic, tracing
// for benchmark runs, and structured JSON logging with URL sanitization.
package observe
