package domain

// Logical field names used by query filters. Store adapters map them to
// their own columns.
const (
	FieldID               = "id"
	FieldTenantID         = "tenant_id"
	FieldDocumentKindID   = "document_kind_id"
	FieldResultLabel      = "result_label"
	FieldConfidence       = "confidence"
	FieldRiskScore        = "risk_score"
	FieldContentHash      = "content_hash"
	FieldGeoCountry       = "geo_country"
	FieldGeoCity          = "geo_city"
	FieldCreatedAt        = "created_at"
	FieldStatus           = "status"
	FieldAssignedToUserID = "assigned_to_user_id"
	FieldScanEventID      = "scan_event_id"
	FieldName             = "name"

	FieldExtractedIdentifier  = "extracted_fields.studentId"
	FieldExtractedDisplayName = "extracted_fields.name"
)

// SelfField denotes a collection's own identity field as the tenant key,
// used when scoping queries against the tenant collection itself.
const SelfField = "_self"
