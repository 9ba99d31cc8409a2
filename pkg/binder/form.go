package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values into v using `form:"name"` tags. Fields without a tag bind to the
// lowercased field name; `form:"-"` skips a field. Requests of another
// content type yield ErrBinderNotApplicable.
//
// Supported types are strings, integers, floats, bools, pointers to those
// for optional fields, and slices for multi-value fields.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mt := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// mediaType returns the lowercased media type of the request without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return strings.ToLower(mt)
}

// sanitizeString trims surrounding whitespace and drops NUL bytes.
func sanitizeString(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}
