// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"relate/internal/domain/service"
)

// plainVerifier compares credentials as plain values.
//
// The upstream system stores passwords unhashed and this implementation
// preserves that behavior; only the comparison is constant-time. Swapping in
// a hashing scheme means replacing this type, not its callers.
type plainVerifier struct{}

// NewPlainVerifier is the constructor for plainVerifier.
// It returns the implementation as a service.CredentialVerifier interface.
func NewPlainVerifier() service.CredentialVerifier {
	return &plainVerifier{}
}

// Verify reports whether the supplied credential equals the stored one.
func (v *plainVerifier) Verify(supplied, stored string) bool {
	if supplied == "" || stored == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) == 1
}
