// Package trace records what svfacts did and in which order. It is the
// project's logging layer: commands and the parser emit events, and the
// --trace/--trace-level flags decide where they go.
//
// # Tracers
//
//   - Nop: zero-cost default when tracing is off
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events in memory, used by tests and for
//     dumping context after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// Events carry a Scope; the Level decides which scopes pass:
//
//	off     nothing
//	error   nothing except explicit failure dumps
//	phase   ScopeRun (one command invocation)
//	detail  ScopeRun, ScopeFile (one source file)
//	debug   everything, including ScopeNode parser decisions
//	        (operator folds, recovery skips, mismatched closers)
//
// # Propagation
//
//	ctx = trace.WithTracer(ctx, t)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse:"+path, 0)
//	defer span.End("")
package trace
