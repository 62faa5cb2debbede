package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"authentiqa/internal/domain"
)

const (
	DefaultPageSize = 20

	// ScanEventPageCeiling bounds the page size of scan event listings.
	ScanEventPageCeiling = 100
	// FraudCasePageCeiling bounds the page size of fraud case listings.
	FraudCasePageCeiling = 200
	// TenantPageCeiling bounds the page size of tenant listings.
	TenantPageCeiling = 100
)

// Sort orders a listing by a single field.
type Sort struct {
	Field string
	Desc  bool
}

// Plan is a validated, bounded listing query. It is never executed here.
type Plan struct {
	Filter   Filter
	Sort     Sort
	Skip     int
	Limit    int
	Page     int
	PageSize int
}

// ScanEventParams are the raw listing parameters of GET /scan-events.
type ScanEventParams struct {
	Q              string `form:"q"`
	TenantID       string `form:"tenantId"`
	DocumentKindID string `form:"documentKindId"`
	ResultLabel    string `form:"resultLabel"`
	Country        string `form:"country"`
	City           string `form:"city"`
	MinConfidence  string `form:"minConfidence"`
	MaxConfidence  string `form:"maxConfidence"`
	MinRiskScore   string `form:"minRiskScore"`
	MaxRiskScore   string `form:"maxRiskScore"`
	DateFrom       string `form:"dateFrom"`
	DateTo         string `form:"dateTo"`
	SortBy         string `form:"sortBy"`
	SortDir        string `form:"sortDir"`
	Page           string `form:"page"`
	PageSize       string `form:"pageSize"`
}

// FraudCaseParams are the raw listing parameters of GET /fraud-cases.
type FraudCaseParams struct {
	Status           string `form:"status"`
	AssignedToUserID string `form:"assignedToUserId"`
	TenantID         string `form:"tenantId"`
	DateFrom         string `form:"dateFrom"`
	DateTo           string `form:"dateTo"`
	Page             string `form:"page"`
	PageSize         string `form:"pageSize"`
}

var scanEventSortFields = map[string]string{
	"createdAt":  domain.FieldCreatedAt,
	"riskScore":  domain.FieldRiskScore,
	"confidence": domain.FieldConfidence,
}

// Paginate parses page and pageSize. Missing, malformed or non-positive
// values fall back to the defaults; pageSize is truncated to ceiling.
func Paginate(rawPage, rawPageSize string, ceiling int) (page, pageSize int) {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(strings.TrimSpace(rawPageSize))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > ceiling {
		pageSize = ceiling
	}
	return page, pageSize
}

// BuildScanEventPlan translates listing parameters into a plan. Every
// malformed parameter is reported in the returned ValidationError.
func BuildScanEventPlan(p ScanEventParams) (Plan, error) {
	verr := &domain.ValidationError{}
	f := Filter{}

	if id, ok := parseUUID(verr, "tenantId", p.TenantID); ok {
		f = f.Where(domain.FieldTenantID, id)
	}
	if id, ok := parseUUID(verr, "documentKindId", p.DocumentKindID); ok {
		f = f.Where(domain.FieldDocumentKindID, id)
	}
	if p.ResultLabel != "" {
		label := domain.ResultLabel(p.ResultLabel)
		if label.Valid() {
			f = f.Where(domain.FieldResultLabel, label)
		} else {
			verr.Add("resultLabel", "must be one of AUTHENTIC, SUSPICIOUS, FORGED")
		}
	}
	if p.Country != "" {
		f = f.Where(domain.FieldGeoCountry, p.Country)
	}
	if p.City != "" {
		f = f.Where(domain.FieldGeoCity, p.City)
	}

	f = f.Between(domain.FieldConfidence,
		parseFloat(verr, "minConfidence", p.MinConfidence),
		parseFloat(verr, "maxConfidence", p.MaxConfidence))
	f = f.Between(domain.FieldRiskScore,
		parseFloat(verr, "minRiskScore", p.MinRiskScore),
		parseFloat(verr, "maxRiskScore", p.MaxRiskScore))
	f = f.Between(domain.FieldCreatedAt,
		parseTime(verr, "dateFrom", p.DateFrom),
		parseTime(verr, "dateTo", p.DateTo))

	if q := strings.TrimSpace(p.Q); q != "" {
		f = f.MatchAny(q,
			domain.FieldContentHash,
			domain.FieldExtractedIdentifier,
			domain.FieldExtractedDisplayName)
	}

	if err := verr.OrNil(); err != nil {
		return Plan{}, err
	}

	sortField, ok := scanEventSortFields[p.SortBy]
	if !ok {
		sortField = domain.FieldCreatedAt
	}
	page, pageSize := Paginate(p.Page, p.PageSize, ScanEventPageCeiling)

	return Plan{
		Filter:   f,
		Sort:     Sort{Field: sortField, Desc: p.SortDir != "asc"},
		Skip:     (page - 1) * pageSize,
		Limit:    pageSize,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// BuildFraudCasePlan translates case listing parameters into a plan sorted
// by creation time, newest first.
func BuildFraudCasePlan(p FraudCaseParams) (Plan, error) {
	verr := &domain.ValidationError{}
	f := Filter{}

	if p.Status != "" {
		status := domain.CaseStatus(p.Status)
		if status.Valid() {
			f = f.Where(domain.FieldStatus, status)
		} else {
			verr.Add("status", "unknown case status")
		}
	}
	if id, ok := parseUUID(verr, "assignedToUserId", p.AssignedToUserID); ok {
		f = f.Where(domain.FieldAssignedToUserID, id)
	}
	if id, ok := parseUUID(verr, "tenantId", p.TenantID); ok {
		f = f.Where(domain.FieldTenantID, id)
	}
	f = f.Between(domain.FieldCreatedAt,
		parseTime(verr, "dateFrom", p.DateFrom),
		parseTime(verr, "dateTo", p.DateTo))

	if err := verr.OrNil(); err != nil {
		return Plan{}, err
	}

	page, pageSize := Paginate(p.Page, p.PageSize, FraudCasePageCeiling)
	return Plan{
		Filter:   f,
		Sort:     Sort{Field: domain.FieldCreatedAt, Desc: true},
		Skip:     (page - 1) * pageSize,
		Limit:    pageSize,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func parseUUID(verr *domain.ValidationError, field, raw string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add(field, "must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// parseFloat returns nil for an absent or malformed bound so that the
// result can be passed straight to Filter.Between.
func parseFloat(verr *domain.ValidationError, field, raw string) any {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.Add(field, "must be a number")
		return nil
	}
	return v
}

func parseTime(verr *domain.ValidationError, field, raw string) any {
	if raw == "" {
		return nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		verr.Add(field, "must be an RFC 3339 timestamp or YYYY-MM-DD date")
		return nil
	}
	return t
}

// ParseTime accepts an RFC 3339 timestamp or a YYYY-MM-DD date (UTC midnight).
func ParseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
