// Package server exposes a validated application over HTTP.
//
// Endpoints:
//
//	GET /healthz              liveness
//	GET /readyz               503 while the registrations contain cycles
//	GET /debug/dependencies   the dependency graph as JSON
//	GET /debug/validation     the validation result as JSON
//	GET /metrics              Prometheus metrics
//
// The server is only started after startup validation passed, so systemd
// readiness (sd_notify READY=1) implies an acyclic dependency graph.
package server
