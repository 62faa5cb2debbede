package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"authentiqa/internal/domain"
	"authentiqa/internal/metrics"
	"authentiqa/internal/port"
	"authentiqa/internal/query"
	"authentiqa/internal/scope"
)

// IngestScanEventInput is the metadata a device submits after a scan.
// Raw document content is never accepted.
type IngestScanEventInput struct {
	TenantID               string                 `json:"tenantId"`
	DocumentKindID         string                 `json:"documentKindId"`
	SourceApp              string                 `json:"sourceApp"`
	ContentHash            string                 `json:"contentHash"`
	ResultLabel            string                 `json:"resultLabel"`
	Confidence             *float64               `json:"confidence"`
	RiskScore              *float64               `json:"riskScore"`
	Reasons                []string               `json:"reasons"`
	SuspiciousRegionsCount *int                   `json:"suspiciousRegionsCount"`
	ExtractedFields        map[string]interface{} `json:"extractedFields"`
	GeoCountry             *string                `json:"geoCountry"`
	GeoCity                *string                `json:"geoCity"`
	DeviceLanguage         *string                `json:"deviceLanguage"`
}

// ScanEventService ingests and serves scan events.
type ScanEventService interface {
	Ingest(ctx context.Context, input IngestScanEventInput) (*domain.ScanEvent, error)
	Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.ScanEvent, error)
	List(ctx context.Context, p domain.Principal, params query.ScanEventParams) (domain.Page[domain.ScanEvent], error)
}

type scanEventService struct {
	repo    port.ScanEventRepository
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewScanEventService creates a new ScanEventService implementation.
func NewScanEventService(repo port.ScanEventRepository, m *metrics.Metrics, log *zap.Logger) ScanEventService {
	return &scanEventService{repo: repo, metrics: m, log: log}
}

func (s *scanEventService) Ingest(ctx context.Context, input IngestScanEventInput) (*domain.ScanEvent, error) {
	event, err := input.toEvent()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.metrics.ScanEventIngested(string(event.ResultLabel))
	s.log.Debug("scan event ingested",
		zap.String("scan_event_id", event.ID.String()),
		zap.String("tenant_id", event.TenantID.String()),
		zap.String("result_label", string(event.ResultLabel)))
	return event, nil
}

// toEvent validates the input and reports every violation at once.
func (in IngestScanEventInput) toEvent() (*domain.ScanEvent, error) {
	verr := &domain.ValidationError{}
	event := &domain.ScanEvent{
		ContentHash:     strings.TrimSpace(in.ContentHash),
		Confidence:      in.Confidence,
		Reasons:         datatypes.JSONSlice[string](in.Reasons),
		ExtractedFields: datatypes.JSONMap(in.ExtractedFields),
		GeoCountry:      in.GeoCountry,
		GeoCity:         in.GeoCity,
		DeviceLanguage:  in.DeviceLanguage,
	}

	event.TenantID = requiredUUID(verr, "tenantId", in.TenantID)
	event.DocumentKindID = requiredUUID(verr, "documentKindId", in.DocumentKindID)

	switch app := domain.SourceApp(in.SourceApp); {
	case in.SourceApp == "":
		verr.Add("sourceApp", "is required")
	case !app.Valid():
		verr.Add("sourceApp", "must be ios or android")
	default:
		event.SourceApp = app
	}

	if event.ContentHash == "" {
		verr.Add("contentHash", "is required")
	}

	switch label := domain.ResultLabel(in.ResultLabel); {
	case in.ResultLabel == "":
		verr.Add("resultLabel", "is required")
	case !label.Valid():
		verr.Add("resultLabel", "must be one of AUTHENTIC, SUSPICIOUS, FORGED")
	default:
		event.ResultLabel = label
	}

	if in.Confidence != nil && (*in.Confidence < 0 || *in.Confidence > 1) {
		verr.Add("confidence", "must be between 0 and 1")
	}
	if in.RiskScore != nil {
		if *in.RiskScore < 0 || *in.RiskScore > 100 {
			verr.Add("riskScore", "must be between 0 and 100")
		}
		event.RiskScore = *in.RiskScore
	}
	if in.SuspiciousRegionsCount != nil {
		if *in.SuspiciousRegionsCount < 0 {
			verr.Add("suspiciousRegionsCount", "must not be negative")
		}
		event.SuspiciousRegionsCount = *in.SuspiciousRegionsCount
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return event, nil
}

func requiredUUID(verr *domain.ValidationError, field, raw string) uuid.UUID {
	if raw == "" {
		verr.Add(field, "is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add(field, "must be a valid UUID")
		return uuid.Nil
	}
	return id
}

// Get returns the event when it lies within p's scope. Events outside the
// scope are reported as not found.
func (s *scanEventService) Get(ctx context.Context, p domain.Principal, id uuid.UUID) (*domain.ScanEvent, error) {
	return s.repo.GetByID(ctx, id, scope.Resolve(p, query.Filter{}, domain.FieldTenantID))
}

func (s *scanEventService) List(ctx context.Context, p domain.Principal, params query.ScanEventParams) (domain.Page[domain.ScanEvent], error) {
	plan, err := query.BuildScanEventPlan(params)
	if err != nil {
		return domain.Page[domain.ScanEvent]{}, err
	}
	plan.Filter = scope.Resolve(p, plan.Filter, domain.FieldTenantID)

	total, err := s.repo.Count(ctx, plan.Filter)
	if err != nil {
		return domain.Page[domain.ScanEvent]{}, err
	}
	events, err := s.repo.Find(ctx, plan)
	if err != nil {
		return domain.Page[domain.ScanEvent]{}, err
	}
	return domain.NewPage(events, total, plan.Page, plan.PageSize), nil
}
