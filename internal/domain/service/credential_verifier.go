// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialVerifier checks a login credential against the stored one.
//
// The upstream product stores passwords as plain values and compares them
// directly; that gap is preserved here rather than silently fixed. This seam
// exists so a hashing implementation can replace the plaintext one without
// touching the usecase layer.
type CredentialVerifier interface {
	// Verify reports whether the supplied credential matches the stored one.
	Verify(supplied, stored string) bool
}
