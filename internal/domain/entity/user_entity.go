package entity

import (
	"time"
)

// User is the aggregate root for the customer domain.
// Identity fields are plaintext; every PII and payment field holds an
// encryption token produced by fieldcrypt, never the raw value.
//
// Records are immutable after registration.
type User struct {
	ID           string
	Role         Role
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time

	// Personal identity (tokens)
	NIK         string
	DateOfBirth string
	Phone       string
	Address     string

	// Payment card (tokens)
	CardNumber string
	CardExpiry string
	CardCVV    string
}

// EncryptedFields lists the JSON names of the fields stored as tokens.
var EncryptedFields = []string{"nik", "dateOfBirth", "phone", "address", "cardNumber", "cardExpiry", "cardCvv"}

// Clone returns a shallow copy; all fields are values.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
