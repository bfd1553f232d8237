package models

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationRole string

const (
	RoleOwner  OrganizationRole = "owner"
	RoleAdmin  OrganizationRole = "admin"
	RoleMember OrganizationRole = "member"
)

type Organization struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OrganizationMember struct {
	OrganizationID uuid.UUID        `db:"organization_id"`
	UserID         uuid.UUID        `db:"user_id"`
	Role           OrganizationRole `db:"role"`
	CreatedAt      time.Time        `db:"created_at"`
}

// CanManageMembers reports whether a role is allowed to add or remove members.
func (r OrganizationRole) CanManageMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}
