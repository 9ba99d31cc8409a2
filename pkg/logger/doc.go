// Package logger builds *slog.Logger instances for the landing server and
// provides attribute helpers that keep key names consistent.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout) and wraps the handler with LogHandlerDecorator so values
// stored in the request context, such as the request id or the environment,
// are attached to every record logged with a context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "landing"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "notification emitted",
//		logger.SessionID(id),
//		logger.StatusCode("payment.success"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
