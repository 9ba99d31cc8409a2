// Package cookie manages plain and HMAC-signed HTTP cookies.
//
// A Manager is created with one or more secrets of at least 32 bytes. The
// first secret signs new cookies; every secret is accepted when verifying,
// so secrets can be rotated without invalidating live sessions.
//
//	man, err := cookie.NewFromConfig(cfg)
//	if err != nil {
//	    return err
//	}
//	man.SetSigned(w, "landing_session", id)
//	id, err := man.GetSigned(r, "landing_session")
//
// Failures are reported with sentinel errors such as ErrCookieNotFound and
// ErrInvalidSignature.
package cookie
