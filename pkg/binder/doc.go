// Package binder decodes HTTP request bodies into typed request structs.
//
// Each binder handles one family of content types and returns
// ErrBinderNotApplicable for anything else, so several binders can be
// chained and the first matching one wins:
//
//	type EmitRequest struct {
//	    Type          string `json:"type" form:"type"`
//	    PrimaryText   string `json:"primaryText" form:"primaryText"`
//	    SecondaryText string `json:"secondaryText" form:"secondaryText"`
//	}
//
//	handler.Wrap(emit, handler.WithBinders(binder.JSON(), binder.Form()))
//
// JSON is strict: unknown fields and trailing data are rejected and bodies
// are capped at DefaultMaxJSONSize. Both binders trim surrounding whitespace
// from string fields.
package binder
