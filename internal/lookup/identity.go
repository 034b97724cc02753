package lookup

import (
	"log/slog"
	"net/http"
)

// Default names of the identity headers set by the gateway.
const (
	DefaultCallerIDHeader    = "X-Caller-Id"
	DefaultCallerEmailHeader = "X-Caller-Email"
)

// IdentityHeaders names the headers the gateway uses to assert the caller identity.
type IdentityHeaders struct {
	CallerID    string
	CallerEmail string
}

// DefaultIdentityHeaders returns x-caller-id / x-caller-email.
func DefaultIdentityHeaders() IdentityHeaders {
	return IdentityHeaders{
		CallerID:    DefaultCallerIDHeader,
		CallerEmail: DefaultCallerEmailHeader,
	}
}

// Identity is the caller identity asserted by the gateway. Both fields are optional,
// e.g. internal health checks do not carry them.
//
// The values are trusted as-is and only logged.
type Identity struct {
	CallerID    string
	CallerEmail string
}

// IdentityFromRequest reads the identity headers. Missing headers give empty fields.
func IdentityFromRequest(r *http.Request, headers IdentityHeaders) Identity {
	return Identity{
		CallerID:    r.Header.Get(headers.CallerID),
		CallerEmail: r.Header.Get(headers.CallerEmail),
	}
}

// Present reports whether the gateway supplied a caller id.
func (id Identity) Present() bool {
	return id.CallerID != ""
}

// logAttrs returns the attributes logged for the identity.
func (id Identity) logAttrs(withEmail bool) []slog.Attr {
	if !id.Present() {
		return nil
	}
	attrs := []slog.Attr{slog.String("caller_id", id.CallerID)}
	if withEmail {
		attrs = append(attrs, slog.String("caller_email", id.CallerEmail))
	}
	return attrs
}
