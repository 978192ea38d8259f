// Package bootstrap runs a configured, finite task with startup and shutdown
// hooks.
//
// NewApp applies defaults, validates the config and initializes logging.
// RunTask runs OnStart hooks, the task, and OnStop hooks, cancelling the
// task's context on SIGINT or SIGTERM.
package bootstrap
