package enums

import "fmt"

// Role is the access level carried by an authenticated account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (r Role) String() string { return string(r) }

// ParseRole validates a raw string against the known roles.
func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q", value)
	}
	return role, nil
}
