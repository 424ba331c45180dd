// Package metrics provides optional Prometheus instrumentation for ring
// handles. The core handles stay unchecked and unobserved; callers opt in
// by wrapping the handle they give to each goroutine. Each wrapper
// registers its own collectors, labeled by ring name and role, so both
// sides of one ring can share a registry.
package metrics
