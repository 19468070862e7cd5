package domain

// LoginResult is the outcome of a password login. Exactly one of the variants
// below is returned; callers switch on the concrete type.
type LoginResult interface {
	loginResult()
}

// TokenIssued ends the login with a session token (admins, and every
// completed second-factor step).
type TokenIssued struct {
	User  User
	Token string
}

// SetupRequired is returned when the account has not finished TOTP
// enrollment. A fresh secret has already been persisted.
type SetupRequired struct {
	UserID     string
	Secret     string
	OTPAuthURL string
	QRCode     string // data:image/png;base64,...
}

// ChallengeRequired asks the caller for a second factor.
type ChallengeRequired struct {
	UserID      string
	Methods     []TwoFactorMethod
	MaskedPhone *string
}

// Rejected ends the login without a token. Reason is one of the service's
// authentication or authorization errors.
type Rejected struct {
	Reason error
}

func (TokenIssued) loginResult()       {}
func (SetupRequired) loginResult()     {}
func (ChallengeRequired) loginResult() {}
func (Rejected) loginResult()          {}

// AvailableMethods lists the second factors u can receive. The authenticator
// is always offered; WhatsApp only with a phone on file.
func AvailableMethods(u *User) []TwoFactorMethod {
	if u.HasPhone() {
		return []TwoFactorMethod{MethodAuthenticator, MethodWhatsApp}
	}
	return []TwoFactorMethod{MethodAuthenticator}
}

// MaskPhone keeps the first and last three characters of a phone number.
// Numbers too short to mask that way are hidden entirely.
func MaskPhone(phone string) *string {
	if phone == "" {
		return nil
	}
	r := []rune(phone)
	var masked string
	if len(r) < 7 {
		masked = "****"
	} else {
		masked = string(r[:3]) + "****" + string(r[len(r)-3:])
	}
	return &masked
}
