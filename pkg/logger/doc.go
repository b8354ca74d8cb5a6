// Package logger builds *slog.Logger values for the lint tool and keeps
// attribute names consistent across packages.
//
// New takes functional options for level, format, output and static
// attributes. WithEnvironment applies presets: development logs text at
// debug level, staging and production log JSON at info level. Context
// extractors registered with WithContextExtractors or WithContextValue run
// on every record, so request-scoped values such as a correlation id end up
// in the output without being passed around.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "ocpi-lint"),
//		logger.WithContextValue("correlation_id", correlationKey),
//	)
//	log.InfoContext(ctx, "file checked", logger.File(path), logger.Count(n))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
