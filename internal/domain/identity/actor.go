// Package identity models the acting user as seen by the workflow core.
// Registration, authentication, and directory management live outside this
// module; only the current-identity contract is expressed here.
package identity

import (
	"context"
	"fmt"

	vo "gatepass/internal/domain/gatepass/valueobjects"
)

type Role string

const (
	RoleRequester       Role = "user"
	RoleSecurity        Role = "security"
	RoleDepartmentAdmin Role = "department_admin"
)

var validRoles = map[Role]bool{
	RoleRequester:       true,
	RoleSecurity:        true,
	RoleDepartmentAdmin: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

// Actor is the identity snapshot of the caller performing a workflow operation.
// Department is only meaningful for department admins.
type Actor struct {
	ID         string
	Name       string
	Role       Role
	Department vo.Department
}

func (a Actor) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("actor ID is required")
	}
	if a.Name == "" {
		return fmt.Errorf("actor name is required")
	}
	if !a.Role.IsValid() {
		return fmt.Errorf("invalid actor role: %s", a.Role)
	}
	if a.Role == RoleDepartmentAdmin && !a.Department.IsValid() {
		return fmt.Errorf("department admin requires a valid department")
	}
	return nil
}

// Session exposes the current identity held by the external session store.
type Session interface {
	Current(ctx context.Context) (Actor, error)
}
