// Package scope narrows queries and writes to the caller's tenant.
package scope

import (
	"github.com/google/uuid"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// Resolve returns base narrowed to what p may see. tenantField names the
// field holding the owning tenant; domain.SelfField means the record is the
// tenant itself.
//
// SuperAdmin sees base unchanged. A TenantAdmin with a tenant is pinned to it,
// overriding any tenant the caller asked for. Everyone else sees nothing.
func Resolve(p domain.Principal, base query.Filter, tenantField string) query.Filter {
	switch v := p.(type) {
	case domain.SuperAdmin:
		return base
	case domain.TenantAdmin:
		if v.TenantID == nil {
			return base.Never()
		}
		field := tenantField
		if field == domain.SelfField {
			field = domain.FieldID
		}
		return base.Where(field, *v.TenantID)
	default:
		return base.Never()
	}
}

// Permits reports whether p may act on records owned by tenantID.
func Permits(p domain.Principal, tenantID uuid.UUID) bool {
	switch v := p.(type) {
	case domain.SuperAdmin:
		return true
	case domain.TenantAdmin:
		return v.TenantID != nil && *v.TenantID == tenantID
	default:
		return false
	}
}
