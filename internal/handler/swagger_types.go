package handler

import (
	"time"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@cairo.edu.eg"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// CreateTenantRequest represents the create tenant request body.
type CreateTenantRequest struct {
	Name    string `json:"name" binding:"required" example:"Cairo University"`
	Country string `json:"country" example:"EG"`
	Status  string `json:"status" example:"ACTIVE" enums:"ACTIVE,PENDING,DISABLED"`
}

// UpdateTenantRequest represents the update tenant request body.
type UpdateTenantRequest struct {
	Name    *string `json:"name" example:"Cairo University"`
	Country *string `json:"country" example:"EG"`
	Status  *string `json:"status" example:"PENDING"`
}

// TenantStatusRequest represents the tenant status request body.
type TenantStatusRequest struct {
	Status string `json:"status" binding:"required" example:"DISABLED" enums:"ACTIVE,PENDING,DISABLED"`
}

// CreateDocumentKindRequest represents the create document kind request body.
type CreateDocumentKindRequest struct {
	Name    string `json:"name" binding:"required" example:"Diploma" enums:"Transcript,Diploma,Attestation"`
	Version string `json:"version" example:"2024"`
	Status  string `json:"status" example:"ACTIVE" enums:"ACTIVE,DISABLED"`
}

// UpdateDocumentKindRequest represents the update document kind request body.
type UpdateDocumentKindRequest struct {
	Name    *string `json:"name" example:"Transcript"`
	Version *string `json:"version" example:"2025"`
	Status  *string `json:"status" example:"ACTIVE"`
}

// DocumentKindStatusRequest represents the document kind status request body.
type DocumentKindStatusRequest struct {
	Status string `json:"status" binding:"required" example:"DISABLED" enums:"ACTIVE,DISABLED"`
}

// IngestScanEventRequest represents the scan event submitted by a device.
type IngestScanEventRequest struct {
	TenantID               string            `json:"tenantId" binding:"required" example:"6f1c1c3a-8d9e-4a51-9d0e-2b7c51c1a001"`
	DocumentKindID         string            `json:"documentKindId" binding:"required" example:"0b4a7f7e-3a42-4b8e-9b1e-6d2f0c9e1002"`
	SourceApp              string            `json:"sourceApp" binding:"required" example:"ios" enums:"ios,android"`
	ContentHash            string            `json:"contentHash" binding:"required" example:"sha256:9f86d081884c7d65"`
	ResultLabel            string            `json:"resultLabel" binding:"required" example:"SUSPICIOUS" enums:"AUTHENTIC,SUSPICIOUS,FORGED"`
	Confidence             *float64          `json:"confidence" example:"0.82"`
	RiskScore              *float64          `json:"riskScore" example:"64"`
	Reasons                []string          `json:"reasons" example:"font_mismatch,seal_misaligned"`
	SuspiciousRegionsCount *int              `json:"suspiciousRegionsCount" example:"2"`
	ExtractedFields        map[string]string `json:"extractedFields"`
	GeoCountry             *string           `json:"geoCountry" example:"EG"`
	GeoCity                *string           `json:"geoCity" example:"Cairo"`
	DeviceLanguage         *string           `json:"deviceLanguage" example:"ar"`
}

// CreateFraudCaseRequest represents the create fraud case request body.
type CreateFraudCaseRequest struct {
	ScanEventID      string  `json:"scanEventId" binding:"required" example:"1d8e5c9b-7f0a-4c2e-8b3d-5a6f7e8d9c03"`
	Status           string  `json:"status" example:"OPEN"`
	AssignedToUserID *string `json:"assignedToUserId" example:"2e9f6dac-801b-4d3f-9c4e-6b7a8f9e0d04"`
	Notes            string  `json:"notes" example:"seal does not match the registry sample"`
}

// UpdateFraudCaseRequest represents the update fraud case request body.
type UpdateFraudCaseRequest struct {
	Status           *string `json:"status" example:"IN_REVIEW" enums:"OPEN,IN_REVIEW,CONFIRMED_FRAUD,FALSE_POSITIVE,CLOSED"`
	AssignedToUserID *string `json:"assignedToUserId" example:"2e9f6dac-801b-4d3f-9c4e-6b7a8f9e0d04"`
	Notes            *string `json:"notes" example:"escalated to registrar"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken string       `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt   time.Time    `json:"expiresAt" example:"2026-01-15T10:30:00Z"`
	User        *domain.User `json:"user"`
}

// IDResponse carries the identifier of a created record.
type IDResponse struct {
	ID uuid.UUID `json:"id" example:"1d8e5c9b-7f0a-4c2e-8b3d-5a6f7e8d9c03"`
}

// FraudCaseCreated is returned when a fraud case is opened.
type FraudCaseCreated struct {
	ID        uuid.UUID         `json:"id"`
	FraudCase *domain.FraudCase `json:"fraudCase"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// TenantPage is the tenant listing envelope.
type TenantPage struct {
	Items    []domain.Tenant `json:"items"`
	Total    int             `json:"total" example:"3"`
	Page     int             `json:"page" example:"1"`
	PageSize int             `json:"pageSize" example:"20"`
}

// ScanEventPage is the scan event listing envelope.
type ScanEventPage struct {
	Items    []domain.ScanEvent `json:"items"`
	Total    int                `json:"total" example:"1280"`
	Page     int                `json:"page" example:"1"`
	PageSize int                `json:"pageSize" example:"20"`
}

// FraudCasePage is the fraud case listing envelope.
type FraudCasePage struct {
	Items    []domain.FraudCase `json:"items"`
	Total    int                `json:"total" example:"42"`
	Page     int                `json:"page" example:"1"`
	PageSize int                `json:"pageSize" example:"20"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
