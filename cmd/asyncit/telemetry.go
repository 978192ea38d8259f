package main

import (
	"context"

	"github.com/kbukum/asyncit/bootstrap"
	"github.com/kbukum/asyncit/config"
	"github.com/kbukum/asyncit/errors"
	"github.com/kbukum/asyncit/observability"
)

// telemetryHook installs OTLP trace and metric providers and registers their
// shutdown, which flushes pending spans and metrics.
func telemetryHook(app *bootstrap.App[*config.Config]) bootstrap.Hook {
	return func(ctx context.Context) error {
		cfg := app.Cfg

		tcfg := observability.DefaultTracerConfig(cfg.Name)
		tcfg.ServiceVersion = cfg.Version
		tcfg.Environment = cfg.Environment
		tcfg.Endpoint = cfg.Tracing.Endpoint
		tcfg.Insecure = cfg.Tracing.Insecure
		if cfg.Tracing.SampleRate != nil {
			tcfg.SampleRate = *cfg.Tracing.SampleRate
		}
		tp, err := observability.InitTracer(ctx, tcfg)
		if err != nil {
			return errors.Unavailable("trace exporter").WithCause(err)
		}
		app.OnStop(tp.Shutdown)

		mcfg := observability.DefaultMeterConfig(cfg.Name)
		mcfg.ServiceVersion = cfg.Version
		mcfg.Environment = cfg.Environment
		mcfg.Endpoint = cfg.Tracing.Endpoint
		mcfg.Insecure = cfg.Tracing.Insecure
		mcfg.Interval = cfg.Tracing.MetricsInterval
		mp, err := observability.InitMeter(ctx, &mcfg)
		if err != nil {
			return errors.Unavailable("metric exporter").WithCause(err)
		}
		app.OnStop(mp.Shutdown)
		return nil
	}
}
