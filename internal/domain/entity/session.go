package entity

import "strings"

// SessionContext identifies the browser making a call and carries its auth credential, if any.
// The credential is opaque: only its presence selects the server-backed cart and wishlist.
type SessionContext struct {
	ClientID   string
	Credential string
}

// HasCredential reports whether an auth credential is present.
func (s SessionContext) HasCredential() bool {
	return strings.TrimSpace(s.Credential) != ""
}

// Guest returns a copy of the session without its credential.
func (s SessionContext) Guest() SessionContext {
	return SessionContext{ClientID: s.ClientID}
}
