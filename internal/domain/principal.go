package domain

import "github.com/google/uuid"

// Principal is an authenticated caller. The set of implementations is closed:
// SuperAdmin, TenantAdmin, Analyst and UnknownRole.
type Principal interface {
	UserID() uuid.UUID
	Role() UserRole
	principal()
}

// SuperAdmin is exempt from tenant scoping.
type SuperAdmin struct {
	ID uuid.UUID
}

// TenantAdmin manages a single tenant. A nil TenantID grants access to nothing.
type TenantAdmin struct {
	ID       uuid.UUID
	TenantID *uuid.UUID
}

// Analyst has read-only dashboard access.
type Analyst struct {
	ID       uuid.UUID
	TenantID *uuid.UUID
}

// UnknownRole carries a role string this service does not recognise.
type UnknownRole struct {
	ID       uuid.UUID
	RoleName UserRole
}

func (p SuperAdmin) UserID() uuid.UUID  { return p.ID }
func (p TenantAdmin) UserID() uuid.UUID { return p.ID }
func (p Analyst) UserID() uuid.UUID     { return p.ID }
func (p UnknownRole) UserID() uuid.UUID { return p.ID }

func (SuperAdmin) Role() UserRole    { return RoleSuperAdmin }
func (TenantAdmin) Role() UserRole   { return RoleTenantAdmin }
func (Analyst) Role() UserRole       { return RoleAnalyst }
func (p UnknownRole) Role() UserRole { return p.RoleName }

func (SuperAdmin) principal()  {}
func (TenantAdmin) principal() {}
func (Analyst) principal()     {}
func (UnknownRole) principal() {}

// NewPrincipal builds the principal variant for a role.
func NewPrincipal(userID uuid.UUID, role UserRole, tenantID *uuid.UUID) Principal {
	switch role {
	case RoleSuperAdmin:
		return SuperAdmin{ID: userID}
	case RoleTenantAdmin:
		return TenantAdmin{ID: userID, TenantID: tenantID}
	case RoleAnalyst:
		return Analyst{ID: userID, TenantID: tenantID}
	default:
		return UnknownRole{ID: userID, RoleName: role}
	}
}

// TenantOf returns the tenant a principal belongs to, if any.
func TenantOf(p Principal) *uuid.UUID {
	switch v := p.(type) {
	case TenantAdmin:
		return v.TenantID
	case Analyst:
		return v.TenantID
	default:
		return nil
	}
}
