package user

const RoleAdmin = "admin"

// Principal is the authenticated identity attached to a request after session
// introspection. The auth backend owns credentials and sessions; this service
// only consumes the verdict.
type Principal struct {
	UserID string
	Name   string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
