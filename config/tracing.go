package config

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer writes to trace with key 'iconheaders'
func tracer() tracing.Trace {
	return tracing.Select("iconheaders")
}

// SetupTracing routes tracing to the Go standard logger and sets the trace
// level, one of "Debug", "Info" or "Error".
func SetupTracing(level string) error {
	if !ValidTraceLevel(level) {
		return fmt.Errorf("invalid trace level: %s", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.iconheaders": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	SetTraceLevel(level)
	return nil
}

// ValidTraceLevel reports whether level names a trace level.
func ValidTraceLevel(level string) bool {
	switch level {
	case "Debug", "Info", "Error":
		return true
	}
	return false
}

// SetTraceLevel sets the level of tracer 'iconheaders'. Invalid level names
// are ignored.
func SetTraceLevel(level string) {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	}
}
