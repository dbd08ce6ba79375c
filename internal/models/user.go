package models

import "fmt"

// Role is the closed set of marketplace roles. Route access and navigation
// are keyed on this type rather than raw strings.
type Role string

const (
	RoleVendor          Role = "vendor"
	RoleOrgOwner        Role = "org_owner"
	RoleFacilityManager Role = "facility_manager"
	RoleSuperAdmin      Role = "super_admin"
)

// ParseRole validates a role string received from the backend or a form.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleVendor, RoleOrgOwner, RoleFacilityManager, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User is the authenticated marketplace user as returned by the backend.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	Phone          string `json:"phone,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
	EmailVerified  bool   `json:"emailVerified"`
}

// UserPatch carries a partial profile update; nil fields are left untouched.
type UserPatch struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	EmailVerified *bool   `json:"emailVerified,omitempty"`
}

// Apply merges the patch into the user in place.
func (u *User) Apply(p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.EmailVerified != nil {
		u.EmailVerified = *p.EmailVerified
	}
}
