// SPDX-License-Identifier: MIT

// Package telemetry exports solver activity: Prometheus counters and
// histograms fed by lap hooks, and OpenTelemetry spans around each solve.
package telemetry
