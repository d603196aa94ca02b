// Package logger builds *slog.Logger values for freeval components and
// provides attribute helpers with consistent key names.
//
// New applies functional options to select the output format (text or json),
// the minimum level, the destination, static attributes and ContextExtractor
// callbacks. Extractors run on every record handled with a context, which is
// how the HTTP middleware attaches request ids to its log lines.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup-api"),
//	    logger.WithContextExtractors(httpvalidate.RequestIDExtractor()),
//	)
//	v := validator.New(&req, decls, validator.WithLogger(log))
//
// # Attributes
//
// Field, Fields, Rule, Component and Error return slog.Attr values under fixed
// keys. Error returns an empty Attr for nil input so callers can log
// unconditionally.
package logger
