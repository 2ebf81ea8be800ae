package entity

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Role is a permission carried in an access token's roles claim.
type Role string

const (
	// RoleAdmin may import, patch and delete listings.
	RoleAdmin Role = "admin"
	// RoleEditor may patch listings.
	RoleEditor Role = "editor"
)

func (r Role) known() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Roles is the set of roles a caller holds.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings converts Roles to the claim representation.
func (rs Roles) Strings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}

	return result
}

func (rs Roles) String() string {
	return strings.Join(rs.Strings(), ", ")
}

// RolesFromStrings reads a token's roles claim. Unknown roles are dropped so tokens minted
// with roles this service does not know still authenticate.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.known() {
			result = append(result, role)
		}
	}

	return result
}

// ParseRoles parses a comma separated role list and rejects unknown or duplicate entries.
func ParseRoles(list string) (Roles, error) {
	var roles Roles
	for _, name := range strings.Split(list, ",") {
		role := Role(strings.ToLower(strings.TrimSpace(name)))
		if role == "" {
			continue
		}

		if !role.known() {
			return nil, errors.Errorf("unknown role %q", name)
		}

		if roles.Contains(role) {
			return nil, errors.Errorf("duplicate role %q", name)
		}

		roles = append(roles, role)
	}

	if len(roles) == 0 {
		return nil, errors.New("at least one role is required")
	}

	return roles, nil
}
