// Package siteconfig holds the public configuration of a landing site:
// title, accent color, target blockchain and network, collection contract,
// display currency and wallet login options.
//
// Config is loaded from SITE_* environment variables with pkg/config and is
// made available to handlers and views through the request context:
//
//	var cfg siteconfig.Config
//	config.MustLoad(&cfg)
//	r.Use(siteconfig.Middleware(cfg))
//
//	// in a handler or component
//	cfg := siteconfig.MustFromContext(ctx)
//	price := cfg.FormatPrice(0.25)
package siteconfig
