// Package models defines client-side data models used by the AgroVest CLI.
package models

// Account is a registered user's durable profile record. The whole account
// collection is persisted as a JSON array under a single storage key, so the
// field tags are part of the on-disk format.
//
// Email uniquely identifies an account; uniqueness is case-insensitive.
// Password is stored as plain text; the persisted layout is a compatibility
// contract and must not change.
type Account struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
