package authorization

// Identity is the request-scoped caller. It is built once per request by the
// auth middleware and passed explicitly to every use case.
type Identity struct {
	UserID    uint
	Role      UserRole
	SessionID string
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}

// Owns reports whether the caller is the owner recorded on a resource.
func (i Identity) Owns(ownerID uint) bool {
	return i.UserID != 0 && i.UserID == ownerID
}
