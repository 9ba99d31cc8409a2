// Package environment names the deployment environment of the landing server
// and carries it through request contexts and structured logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	r.Use(environment.Middleware(env))
//
//	if environment.IsProduction(ctx) {
//		// e.g. pick the real e-mail sender
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with a request context carries an "env" attribute.
package environment
