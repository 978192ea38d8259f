// Command asyncit runs a configurable pull pipeline over a list of integers
// and reports how its results partition into successes and errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/asyncit/bootstrap"
	"github.com/kbukum/asyncit/config"
	"github.com/kbukum/asyncit/version"
)

const name = "asyncit"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	configFile := flags.StringP("config", "c", "", "path to config.yml (default: search standard locations)")
	envFile := flags.String("env", "", "path to a .env file")
	showVersion := flags.BoolP("version", "v", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, name, version.Get())
		return nil
	}

	opts := []config.LoaderOption{config.WithEnvPrefix("ASYNCIT")}
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	var cfg config.Config
	if err := config.LoadConfig(name, &cfg, opts...); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		app.OnStart(telemetryHook(app))
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		part, err := runDemo(ctx, cfg.Demo)
		if err != nil {
			return err
		}
		report(stdout, part)
		if _, err := part.IntoOutcome(); err != nil && cfg.Demo.FailOnError {
			return fmt.Errorf("pipeline reported %d error(s): %w", len(part.Errors()), err)
		}
		return nil
	})
}
