// Package logger provides structured logging for asyncit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. Library packages log
// through component loggers at debug level, so nothing is printed unless the
// application raises the level.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("asynciter")
//	log.Debug("drained", logger.Fields(logger.FieldItems, n))
package logger
