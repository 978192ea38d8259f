package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/asyncit/logger"
)

// App runs a finite task with uniform startup and shutdown. The type
// parameter C is the config type; anything embedding config.ServiceConfig
// satisfies Config.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnStart(initTelemetry)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return runPipeline(ctx, app.Cfg)
//	})
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	signals         []os.Signal

	onStart []Hook
	onStop  []Hook
}

// NewApp applies defaults to cfg, validates it and initializes the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()
	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
		signals:         []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		logger.Init(base.Logging)
		app.Logger = logger.WithComponent("app")
	}
	return app, nil
}

// RunTask runs the OnStart hooks, then task, then the OnStop hooks. SIGINT and
// SIGTERM cancel the context passed to task. The task error takes precedence
// over shutdown errors.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	start := time.Now()
	a.Logger.Info("starting", logger.Fields("name", a.Name, "version", a.Version))

	if err := runHooks(ctx, a.onStart); err != nil {
		// Hooks that did start may have registered cleanup.
		_ = a.stop()
		return fmt.Errorf("onStart hook failed: %w", err)
	}

	taskCtx, cancel := signal.NotifyContext(ctx, a.signals...)
	defer cancel()

	a.Logger.Debug("task started", logger.DurationFields("startup", time.Since(start)))
	taskErr := task(taskCtx)
	if taskCtx.Err() != nil && ctx.Err() == nil {
		a.Logger.Info("task interrupted by signal")
	}

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

// Shutdown runs the OnStop hooks. Use it when not going through RunTask.
func (a *App[C]) Shutdown() error {
	return a.stop()
}

// stop runs every OnStop hook within the graceful timeout, in reverse
// registration order, and returns the first error.
func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var firstErr error
	for i := len(a.onStop) - 1; i >= 0; i-- {
		if err := a.onStop[i](ctx); err != nil {
			a.Logger.Error("onStop hook error", logger.Fields(logger.FieldError, err.Error()))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	a.onStop = nil
	a.Logger.Debug("shutdown complete")
	return firstErr
}
