package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/opiegroup/boscotek2026-sub003/internal/ifc"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/internal/observability"
	"github.com/opiegroup/boscotek2026-sub003/internal/store"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

// Request carries everything needed to produce one export. The configurator
// front end resolves product and pricing before calling us, so the service
// stays a pure pipeline.
type Request struct {
	Configuration *models.Configuration `json:"configuration" validate:"required"`
	Product       *models.Product       `json:"product"`
	Pricing       models.Pricing        `json:"pricing"`
	ReferenceCode string                `json:"reference_code" validate:"required,max=64"`
}

type Service struct {
	generator *ifc.Generator
	blobs     store.BlobStore
	records   store.ExportStore
	logger    *observability.Logger
	metrics   *observability.MetricsManager
	tracing   *observability.TracingManager
	urlTTL    time.Duration
}

func NewService(generator *ifc.Generator, blobs store.BlobStore, records store.ExportStore, logger *observability.Logger, metrics *observability.MetricsManager, tracing *observability.TracingManager, urlTTL time.Duration) *Service {
	if urlTTL <= 0 {
		urlTTL = 24 * time.Hour
	}
	return &Service{
		generator: generator,
		blobs:     blobs,
		records:   records,
		logger:    logger,
		metrics:   metrics,
		tracing:   tracing,
		urlTTL:    urlTTL,
	}
}

func (s *Service) Export(ctx context.Context, req *Request) (*models.ExportResult, error) {
	if req == nil || req.Configuration == nil {
		return nil, utils.NewAppError(utils.CodeInvalidInput, "export request requires a configuration", nil)
	}

	family := req.Configuration.ProductFamily
	ctx, span := s.tracing.StartExportOperation(ctx, string(family), req.ReferenceCode)
	defer span.End()

	start := time.Now()
	logger := s.logger.WithContext(ctx)

	ifcText, genDur, err := s.generate(ctx, req)
	if err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		logger.Error().Err(err).Str("reference_code", req.ReferenceCode).Msg("IFC generation failed")
		return nil, err
	}
	s.metrics.RecordGeneration(string(family), genDur)

	datasheet, err := buildDatasheet(req.Configuration, req.Product, req.Pricing, req.ReferenceCode, start)
	if err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, utils.NewAppError(utils.CodeInternal, "failed to build datasheet", err)
	}

	record := models.NewExportRecord(req.ReferenceCode, family)
	record.IFCPath = blobPath(record.ID, req.ReferenceCode, "ifc")
	record.DatasheetPath = blobPath(record.ID, req.ReferenceCode, "json")
	record.ByteSize = int64(len(ifcText))

	if err := s.upload(ctx, record.IFCPath, []byte(ifcText), "model/ifc"); err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, err
	}
	if err := s.upload(ctx, record.DatasheetPath, datasheet, "application/json"); err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, err
	}

	ifcURL, err := s.blobs.SignedURL(record.IFCPath, s.urlTTL)
	if err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, utils.NewAppError(utils.CodeInternal, "failed to sign IFC URL", err)
	}
	datasheetURL, err := s.blobs.SignedURL(record.DatasheetPath, s.urlTTL)
	if err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, utils.NewAppError(utils.CodeInternal, "failed to sign datasheet URL", err)
	}

	record.Duration = time.Since(start)

	dbCtx, dbSpan := s.tracing.StartDatabaseOperation(ctx, "insert", "exports")
	err = s.records.RecordExport(dbCtx, record)
	dbSpan.End()
	if err != nil {
		s.metrics.RecordExport(string(family), "failure", 0, 0, 0)
		s.tracing.SetSpanError(span, err)
		return nil, utils.NewAppError(utils.CodeInternal, "failed to record export", err)
	}

	entityCount := strings.Count(ifcText, "\n#") + 1
	s.metrics.RecordExport(string(family), "success", record.Duration, record.ByteSize, entityCount)
	s.tracing.AddSpanAttributes(span,
		attribute.Int64("export.byte_size", record.ByteSize),
		attribute.Int("export.entity_count", entityCount),
	)

	logger.Info().
		Str("export_id", record.ID.String()).
		Str("reference_code", record.ReferenceCode).
		Str("product_family", string(family)).
		Int64("byte_size", record.ByteSize).
		Dur("duration", record.Duration).
		Msg("Export completed")

	return &models.ExportResult{
		ID:            record.ID,
		ReferenceCode: record.ReferenceCode,
		IFCURL:        ifcURL,
		DatasheetURL:  datasheetURL,
		ByteSize:      record.ByteSize,
		Duration:      record.Duration,
		CreatedAt:     record.CreatedAt,
	}, nil
}

func (s *Service) generate(ctx context.Context, req *Request) (string, time.Duration, error) {
	_, span := s.tracing.StartGeneration(ctx, string(req.Configuration.ProductFamily))
	defer span.End()

	start := time.Now()
	text, err := s.generator.Generate(req.Configuration, req.Product, req.Pricing, req.ReferenceCode)
	elapsed := time.Since(start)
	if err != nil {
		s.tracing.SetSpanError(span, err)
		return "", elapsed, err
	}
	return text, elapsed, nil
}

func (s *Service) upload(ctx context.Context, path string, data []byte, contentType string) error {
	ctx, span := s.tracing.StartBlobOperation(ctx, "put", path)
	defer span.End()

	if err := s.blobs.Put(ctx, path, data); err != nil {
		s.metrics.RecordBlobOperation("put", "failure")
		s.tracing.SetSpanError(span, err)
		return err
	}
	s.metrics.RecordBlobOperation("put", "success")
	s.metrics.RecordBlobUpload(contentType, int64(len(data)))
	return nil
}

func (s *Service) GetExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	ctx, span := s.tracing.StartDatabaseOperation(ctx, "select", "exports")
	defer span.End()
	return s.records.GetExport(ctx, id)
}

func (s *Service) ListExports(ctx context.Context, limit, offset int) ([]*models.ExportRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	ctx, span := s.tracing.StartDatabaseOperation(ctx, "select", "exports")
	defer span.End()
	return s.records.ListExports(ctx, limit, offset)
}

func blobPath(id uuid.UUID, referenceCode, ext string) string {
	return fmt.Sprintf("exports/%s/%s.%s", id, sanitizeReference(referenceCode), ext)
}

// sanitizeReference keeps reference codes filesystem and URL safe.
func sanitizeReference(code string) string {
	var b strings.Builder
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "export"
	}
	return b.String()
}
