// Package logger builds *slog.Logger values for validation runs.
//
// New creates a logger configured by Option functions: output format (text or
// json), minimum level, static attributes, and ContextExtractor callbacks that
// add attributes pulled from context.Context on every record.
//
//	log := logger.New(
//	    logger.WithDevelopment("validate"),
//	    logger.WithContextExtractors(documentFromContext),
//	)
//	log.DebugContext(ctx, "validation emitted",
//	    logger.Validator("signup"),
//	    logger.Severity(r.Severity()),
//	)
//
// Attribute helpers in attr.go keep key names consistent: Validator, RunID,
// Severity, Emission, Emissions, Property, Document, Duration, Component and
// the nil-safe Error.
//
// Loggers write to stderr by default so that command output on stdout stays
// machine readable.
package logger
