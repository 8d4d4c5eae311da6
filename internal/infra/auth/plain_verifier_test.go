package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainVerifier_Verify(t *testing.T) {
	verifier := NewPlainVerifier()

	// Matching credentials
	assert.True(t, verifier.Verify("secret123", "secret123"))

	// Mismatch
	assert.False(t, verifier.Verify("secret123", "other"))

	// Prefix must not match
	assert.False(t, verifier.Verify("secret", "secret123"))

	// Empty values never match, not even each other
	assert.False(t, verifier.Verify("", ""))
	assert.False(t, verifier.Verify("secret123", ""))
	assert.False(t, verifier.Verify("", "secret123"))
}
