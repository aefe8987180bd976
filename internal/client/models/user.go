// Package models defines the wire models exchanged with the shop backend.
package models

import "github.com/google/uuid"

// Role is the closed set of account roles the client understands.
// Any other value coming off the wire is treated as non-admin.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User is the cached projection of the account record.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
}

// IsAdmin reports whether the cached role marks the account as an
// administrator. This is only half of the admin check: the session layer
// additionally cross-checks the token subject against Email.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Address is a delivery address attached to the user's profile.
type Address struct {
	ID      int64  `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// Profile is the /user/profile response: the account plus its addresses.
type Profile struct {
	User
	Addresses []Address `json:"addresses,omitempty"`
}
