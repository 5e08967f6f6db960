package entity

// Role is the capability level carried in a user's access token.
// Only RoleAdmin may view decrypted customer data.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) String() string { return string(r) }

// CanDecrypt reports whether the role may trigger decryption for display.
func (r Role) CanDecrypt() bool { return r == RoleAdmin }
