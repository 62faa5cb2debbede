package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanTotals holds the label counts and averages over a set of scan events.
type ScanTotals struct {
	Total         int     `db:"total"`
	Authentic     int     `db:"authentic"`
	Suspicious    int     `db:"suspicious"`
	Forged        int     `db:"forged"`
	AvgConfidence float64 `db:"avg_confidence"`
	AvgRiskScore  float64 `db:"avg_risk_score"`
}

// ReasonCount is the number of events that reported a reason.
type ReasonCount struct {
	Reason string `db:"reason" json:"reason"`
	Count  int    `db:"count" json:"count"`
}

// DocumentKindCount is the number of events per document kind. Events whose
// kind no longer resolves share one row with nil DocumentKindID and Name.
type DocumentKindCount struct {
	DocumentKindID *uuid.UUID `db:"document_kind_id"`
	Name           *string    `db:"name"`
	Count          int        `db:"count"`
}

// NamedCount is a document kind count as reported to callers.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimeBucket is one calendar-aligned bucket of a timeseries.
type TimeBucket struct {
	Start      time.Time `db:"bucket" json:"date"`
	Authentic  int       `db:"authentic" json:"authentic"`
	Suspicious int       `db:"suspicious" json:"suspicious"`
	Forged     int       `db:"forged" json:"forged"`
	Total      int       `db:"total" json:"total"`
}

// GeoCount is the number of events seen at a (country, city) pair.
type GeoCount struct {
	Country *string `db:"geo_country"`
	City    *string `db:"geo_city"`
	Count   int     `db:"count"`
}

// Overview is the KPI bundle shown on the dashboard landing page.
type Overview struct {
	TotalScans        int           `json:"totalScans"`
	AuthenticCount    int           `json:"authenticCount"`
	SuspiciousCount   int           `json:"suspiciousCount"`
	ForgedCount       int           `json:"forgedCount"`
	FraudRateEstimate float64       `json:"fraudRateEstimate"`
	SuspiciousRate    float64       `json:"suspiciousRate"`
	AvgConfidence     float64       `json:"avgConfidence"`
	AvgRiskScore      float64       `json:"avgRiskScore"`
	TopReasons        []ReasonCount `json:"topReasons"`
	TopDocumentTypes  []NamedCount  `json:"topDocumentTypes"`
	Last7Days         int           `json:"last7Days"`
	Last30Days        int           `json:"last30Days"`
}

// GeoBreakdown nests event counts by country, then city.
type GeoBreakdown map[string]map[string]int
