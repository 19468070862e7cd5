package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

// TwoFactorMethod is the user's preferred second factor. It is a preference
// only; the challenge always offers every method the account can receive.
type TwoFactorMethod string

const (
	MethodAuthenticator TwoFactorMethod = "authenticator"
	MethodWhatsApp      TwoFactorMethod = "whatsapp"
)

func (m TwoFactorMethod) Valid() bool { return m == MethodAuthenticator || m == MethodWhatsApp }

type User struct {
	ID           string
	FullName     string
	Email        string // always lower-case
	PhoneNumber  string // empty when not on file
	PasswordHash string // argon2 encoded
	Role         Role
	Status       Status
	TwoFactor    TwoFactor
	OTP          *OTPChallenge // nil unless a WhatsApp code is outstanding
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TwoFactor is the TOTP enrollment state. A secret exists once enrollment has
// been started; Enabled only becomes true after a verified code.
type TwoFactor struct {
	Enabled bool
	Secret  *string // base32, never sent to clients after enrollment
	Method  TwoFactorMethod
}

// Enrolled reports whether a TOTP secret has been generated.
func (t TwoFactor) Enrolled() bool { return t.Secret != nil && *t.Secret != "" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u *User) HasPhone() bool { return u.PhoneNumber != "" }

// UserRef is the summary embedded in task reads.
type UserRef struct {
	ID       string
	FullName string
	Email    string
}

func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// UserCounts backs the admin dashboard.
type UserCounts struct {
	Total    int64
	Active   int64
	Inactive int64
}
