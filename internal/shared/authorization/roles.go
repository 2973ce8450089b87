package authorization

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleOrganization UserRole = "organization"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOrganization
}

// ParseUserRole falls back to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleOrganization
}
