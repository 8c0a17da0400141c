// Package logger builds the zap logger shared by the server, the worker and
// the CLI commands.
//
// Level selects the minimum level; debug switches to zap's development preset
// (caller info, ISO8601 times). Format chooses json output for production or
// colored console output for terminals.
//
// Requests are correlated by ray id: the rayid middleware stores one per
// request and WithRayID copies it onto a logger.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
