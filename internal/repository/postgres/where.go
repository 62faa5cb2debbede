package postgres

import (
	"fmt"
	"strings"

	"authentiqa/internal/domain"
	"authentiqa/internal/query"
)

// columnMap maps logical filter fields to SQL column expressions.
type columnMap map[string]string

var scanEventColumns = columnMap{
	domain.FieldID:                   "se.id",
	domain.FieldTenantID:             "se.tenant_id",
	domain.FieldDocumentKindID:       "se.document_kind_id",
	domain.FieldResultLabel:          "se.result_label",
	domain.FieldConfidence:           "se.confidence",
	domain.FieldRiskScore:            "se.risk_score",
	domain.FieldContentHash:          "se.content_hash",
	domain.FieldGeoCountry:           "se.geo_country",
	domain.FieldGeoCity:              "se.geo_city",
	domain.FieldCreatedAt:            "se.created_at",
	domain.FieldExtractedIdentifier:  "se.extracted_fields->>'studentId'",
	domain.FieldExtractedDisplayName: "se.extracted_fields->>'name'",
}

// Fraud case queries join scan_events as se, so the tenant resolves
// through the case's event.
var fraudCaseColumns = columnMap{
	domain.FieldID:               "fc.id",
	domain.FieldScanEventID:      "fc.scan_event_id",
	domain.FieldStatus:           "fc.status",
	domain.FieldAssignedToUserID: "fc.assigned_to_user_id",
	domain.FieldCreatedAt:        "fc.created_at",
	domain.FieldTenantID:         "se.tenant_id",
}

var tenantColumns = columnMap{
	domain.FieldID:        "t.id",
	domain.FieldName:      "t.name",
	domain.FieldStatus:    "t.status",
	domain.FieldCreatedAt: "t.created_at",
}

// buildWhereClause translates a filter into a WHERE clause (possibly empty)
// and its positional arguments, numbered from startArg.
func buildWhereClause(f query.Filter, cols columnMap, startArg int) (clause string, args []interface{}, err error) {
	if f.IsNever() {
		return "WHERE FALSE", nil, nil
	}

	var parts []string
	argN := startArg

	for _, c := range f.Conds() {
		col, ok := cols[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", c.Field)
		}
		if !c.IsRange() {
			parts = append(parts, fmt.Sprintf("%s = $%d", col, argN))
			args = append(args, c.Eq)
			argN++
			continue
		}
		if c.Min != nil {
			parts = append(parts, fmt.Sprintf("%s >= $%d", col, argN))
			args = append(args, c.Min)
			argN++
		}
		if c.Max != nil {
			parts = append(parts, fmt.Sprintf("%s <= $%d", col, argN))
			args = append(args, c.Max)
			argN++
		}
	}

	if s := f.Search(); s != nil && len(s.Fields) > 0 {
		ors := make([]string, 0, len(s.Fields))
		for _, field := range s.Fields {
			col, ok := cols[field]
			if !ok {
				return "", nil, fmt.Errorf("unknown search field %q", field)
			}
			ors = append(ors, fmt.Sprintf("%s ~* $%d", col, argN))
		}
		parts = append(parts, "("+strings.Join(ors, " OR ")+")")
		args = append(args, s.Pattern)
	}

	if len(parts) == 0 {
		return "", nil, nil
	}
	return "WHERE " + strings.Join(parts, " AND "), args, nil
}

// orderByClause renders a sort with a stable tie-breaker. Nulls sort as the
// lowest values in both directions.
func orderByClause(s query.Sort, cols columnMap) (string, error) {
	col, ok := cols[s.Field]
	if !ok {
		return "", fmt.Errorf("unknown sort field %q", s.Field)
	}
	dir := "ASC NULLS FIRST"
	if s.Desc {
		dir = "DESC NULLS LAST"
	}
	return fmt.Sprintf("ORDER BY %s %s, %s %s", col, dir, cols[domain.FieldID], dir), nil
}

// dateTruncExpr returns the PostgreSQL date_trunc expression for the given
// granularity. Weeks start on Monday; buckets are computed in UTC.
func dateTruncExpr(granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityWeek:
		return "date_trunc('week', se.created_at AT TIME ZONE 'UTC')"
	default:
		return "date_trunc('day', se.created_at AT TIME ZONE 'UTC')"
	}
}
