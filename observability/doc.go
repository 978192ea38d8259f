// Package observability wires OpenTelemetry tracing and metrics into asyncit.
//
// Every exhaustive drain (asynciter.Collect, combinator Await, partition runs)
// opens a span through StartDrain and records counters through DefaultMetrics.
// Both use the global providers, which are no-ops until an application calls
// InitTracer and InitMeter:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("asyncit"))
//	defer tp.Shutdown(ctx)
//
//	mcfg := observability.DefaultMeterConfig("asyncit")
//	mp, err := observability.InitMeter(ctx, &mcfg)
//	defer mp.Shutdown(ctx)
package observability
