package admin

import "crypto/subtle"

// Authorizer decides whether a supplied secret grants administrator access.
type Authorizer interface {
	Authorize(secret string) bool
}

// SharedSecret authorizes callers presenting one process-wide secret.
type SharedSecret struct {
	secret string
}

// NewSharedSecret builds an Authorizer for secret. An empty secret never authorizes.
func NewSharedSecret(secret string) SharedSecret {
	return SharedSecret{secret: secret}
}

// Authorize reports whether supplied exactly equals the configured secret.
func (s SharedSecret) Authorize(supplied string) bool {
	if s.secret == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(supplied)) == 1
}
