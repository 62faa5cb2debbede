package domain

// UserRole is the role carried by an authenticated principal.
type UserRole string

const (
	RoleSuperAdmin  UserRole = "SUPER_ADMIN"
	RoleTenantAdmin UserRole = "TENANT_ADMIN"
	RoleAnalyst     UserRole = "ANALYST"
)

// TenantStatus is the lifecycle status of a tenant.
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusPending  TenantStatus = "PENDING"
	TenantStatusDisabled TenantStatus = "DISABLED"
)

// Valid reports whether s is a known tenant status.
func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusPending, TenantStatusDisabled:
		return true
	}
	return false
}

// DocumentKindName is the closed set of document kinds a tenant can register.
type DocumentKindName string

const (
	DocumentKindTranscript  DocumentKindName = "Transcript"
	DocumentKindDiploma     DocumentKindName = "Diploma"
	DocumentKindAttestation DocumentKindName = "Attestation"
)

// Valid reports whether n is a known document kind name.
func (n DocumentKindName) Valid() bool {
	switch n {
	case DocumentKindTranscript, DocumentKindDiploma, DocumentKindAttestation:
		return true
	}
	return false
}

// DocumentKindStatus enables or disables a document kind.
type DocumentKindStatus string

const (
	DocumentKindActive   DocumentKindStatus = "ACTIVE"
	DocumentKindDisabled DocumentKindStatus = "DISABLED"
)

func (s DocumentKindStatus) Valid() bool {
	return s == DocumentKindActive || s == DocumentKindDisabled
}

// SourceApp identifies the client platform that performed a scan.
type SourceApp string

const (
	SourceAppIOS     SourceApp = "ios"
	SourceAppAndroid SourceApp = "android"
)

func (s SourceApp) Valid() bool {
	return s == SourceAppIOS || s == SourceAppAndroid
}

// ResultLabel is the verdict produced by the on-device checker.
type ResultLabel string

const (
	ResultAuthentic  ResultLabel = "AUTHENTIC"
	ResultSuspicious ResultLabel = "SUSPICIOUS"
	ResultForged     ResultLabel = "FORGED"
)

func (l ResultLabel) Valid() bool {
	switch l {
	case ResultAuthentic, ResultSuspicious, ResultForged:
		return true
	}
	return false
}

// CaseStatus is the review status of a fraud case.
// Any value may follow any other; the review workflow is a caller policy.
type CaseStatus string

const (
	CaseOpen           CaseStatus = "OPEN"
	CaseInReview       CaseStatus = "IN_REVIEW"
	CaseConfirmedFraud CaseStatus = "CONFIRMED_FRAUD"
	CaseFalsePositive  CaseStatus = "FALSE_POSITIVE"
	CaseClosed         CaseStatus = "CLOSED"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseOpen, CaseInReview, CaseConfirmedFraud, CaseFalsePositive, CaseClosed:
		return true
	}
	return false
}

// Granularity selects the bucket width of a timeseries.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

// ParseGranularity maps a request value to a Granularity. Anything other
// than "week" is treated as "day".
func ParseGranularity(s string) Granularity {
	if s == string(GranularityWeek) {
		return GranularityWeek
	}
	return GranularityDay
}

// Unknown labels aggregation keys that could not be resolved.
const Unknown = "Unknown"
