// Package service provides testify-based test doubles for the domain
// service interfaces in internal/domain/service.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialVerifier is a mock implementation of service.CredentialVerifier.
type MockCredentialVerifier struct {
	mock.Mock
}

// NewMockCredentialVerifier creates a mock whose expectations are asserted when the test ends.
func NewMockCredentialVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialVerifier {
	m := &MockCredentialVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialVerifier) Verify(supplied, stored string) bool {
	args := m.Called(supplied, stored)

	return args.Bool(0)
}
