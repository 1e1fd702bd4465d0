// Package tracing bundles the tracing set-up shared by the packages of this
// module.
package tracing

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Trace is the tracing interface of schuko, re-exported for convenience.
type Trace = tracing.Trace

// Until clients configure tracing, the core tracer logs errors to the
// standard Go logger.
func init() {
	if gtrace.CoreTracer == nil {
		UseGoLog("error")
	}
}

// Tracer traces to the global core tracer.
func Tracer() Trace {
	return gtrace.CoreTracer
}

// SetTestingLog redirects core tracing to the test log of t, at debug level.
// Clients must call the returned teardown function at the end of the test.
func SetTestingLog(t *testing.T) (teardown func()) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown = gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

// UseGoLog lets the core tracer write to the standard Go logger, with a trace
// level given by name ("error", "info" or "debug"). Unknown names select
// level error.
func UseGoLog(level string) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(LevelFromString(level))
}

// LevelFromString maps a trace level name to a tracing.TraceLevel.
func LevelFromString(level string) tracing.TraceLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
