package domain

// Decision is the outcome of an access check.
type Decision int

const (
	Allow Decision = iota
	DenyInactive
	DenyRole
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyInactive:
		return "deny_inactive"
	case DenyRole:
		return "deny_role"
	default:
		return "unknown"
	}
}

// Authorize is the single access policy for authenticated requests.
//
// Admins are never blocked by status. Everyone else must be Active. An
// admin satisfies any required role; a user satisfies only RoleUser.
func Authorize(role Role, status Status, required Role) Decision {
	if role != RoleAdmin && status != StatusActive {
		return DenyInactive
	}
	if required == RoleAdmin && role != RoleAdmin {
		return DenyRole
	}
	if !role.Valid() {
		return DenyRole
	}
	return Allow
}
