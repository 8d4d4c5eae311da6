// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes the two kinds of accounts the product serves.
type UserType string

const (
	// UserTypeConsumer is a regular end customer account.
	UserTypeConsumer UserType = "consumer"

	// UserTypeBusiness is a business account with access to sales metrics.
	UserTypeBusiness UserType = "business"
)

// User is the core entity of the system, representing a registered account.
// The account type is fixed at creation; consumers and businesses share the
// same table and differ only in which optional fields are populated.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, generated by the database.
	Username     *string   // Optional public handle; unique when present.
	BusinessName *string   // Optional display name for business accounts.
	Email        string    // The login identifier; unique across all accounts.
	Password     string    // The stored credential. Kept opaque and never serialized to clients.
	Type         UserType  // Account kind, either "consumer" or "business".
	Category     *string   // Optional business category.
	UniqueCode   *string   // Optional referral/identification code.
	Whatsapp     *string   // Optional WhatsApp contact number.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// IsBusiness reports whether the account may own sales records.
func (u *User) IsBusiness() bool {
	return u.Type == UserTypeBusiness
}
