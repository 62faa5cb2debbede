package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tenant is an organization that owns document kinds and scan events.
type Tenant struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Country   string       `db:"country" json:"country"`
	Status    TenantStatus `db:"status" json:"status"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}

// User is an account that can sign in to the dashboard.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         UserRole   `db:"role" json:"role"`
	TenantID     *uuid.UUID `db:"tenant_id" json:"tenantId"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// DocumentKind is a document type a tenant issues and devices can scan.
type DocumentKind struct {
	ID        uuid.UUID          `db:"id" json:"id"`
	TenantID  uuid.UUID          `db:"tenant_id" json:"tenantId"`
	Name      DocumentKindName   `db:"name" json:"name"`
	Version   string             `db:"version" json:"version"`
	Status    DocumentKindStatus `db:"status" json:"status"`
	CreatedAt time.Time          `db:"created_at" json:"createdAt"`
}

// ScanEvent is the immutable record of one authenticity check performed on a device.
type ScanEvent struct {
	ID                     uuid.UUID                   `db:"id" json:"id"`
	TenantID               uuid.UUID                   `db:"tenant_id" json:"tenantId"`
	DocumentKindID         uuid.UUID                   `db:"document_kind_id" json:"documentKindId"`
	SourceApp              SourceApp                   `db:"source_app" json:"sourceApp"`
	ContentHash            string                      `db:"content_hash" json:"contentHash"`
	ResultLabel            ResultLabel                 `db:"result_label" json:"resultLabel"`
	Confidence             *float64                    `db:"confidence" json:"confidence"`
	RiskScore              float64                     `db:"risk_score" json:"riskScore"`
	Reasons                datatypes.JSONSlice[string] `db:"reasons" json:"reasons"`
	SuspiciousRegionsCount int                         `db:"suspicious_regions_count" json:"suspiciousRegionsCount"`
	ExtractedFields        datatypes.JSONMap           `db:"extracted_fields" json:"extractedFields"`
	GeoCountry             *string                     `db:"geo_country" json:"geoCountry"`
	GeoCity                *string                     `db:"geo_city" json:"geoCity"`
	DeviceLanguage         *string                     `db:"device_language" json:"deviceLanguage"`
	CreatedAt              time.Time                   `db:"created_at" json:"createdAt"`
}

// FraudCase tracks the human review of a suspicious or forged scan event.
// It belongs to the tenant of its scan event; the tenant is not stored here.
type FraudCase struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ScanEventID      uuid.UUID  `db:"scan_event_id" json:"scanEventId"`
	Status           CaseStatus `db:"status" json:"status"`
	AssignedToUserID *uuid.UUID `db:"assigned_to_user_id" json:"assignedToUserId"`
	Notes            string     `db:"notes" json:"notes"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// Page is the listing envelope consumed by pagination UIs.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPage builds a Page, never leaving Items nil.
func NewPage[T any](items []T, total, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}
