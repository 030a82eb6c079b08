package export

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/internal/ifc"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/internal/observability"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

type memBlobStore struct {
	blobs   map[string][]byte
	putErr  error
	signErr error
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (m *memBlobStore) Put(ctx context.Context, path string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.blobs[path] = data
	return nil
}

func (m *memBlobStore) SignedURL(path string, ttl time.Duration) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	return "http://blobs.test/" + path, nil
}

func (m *memBlobStore) Ping(ctx context.Context) error { return nil }
func (m *memBlobStore) Close() error                   { return nil }

type memExportStore struct {
	records   map[uuid.UUID]*models.ExportRecord
	recordErr error
}

func newMemExportStore() *memExportStore {
	return &memExportStore{records: make(map[uuid.UUID]*models.ExportRecord)}
}

func (m *memExportStore) RecordExport(ctx context.Context, record *models.ExportRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records[record.ID] = record
	return nil
}

func (m *memExportStore) GetExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, utils.NewAppError(utils.CodeNotFound, "export not found", utils.ErrNotFound)
	}
	return record, nil
}

func (m *memExportStore) ListExports(ctx context.Context, limit, offset int) ([]*models.ExportRecord, error) {
	var out []*models.ExportRecord
	for _, record := range m.records {
		out = append(out, record)
	}
	return out, nil
}

func (m *memExportStore) Ping(ctx context.Context) error { return nil }
func (m *memExportStore) Close() error                   { return nil }

func newTestService(t *testing.T, blobs *memBlobStore, records *memExportStore) *Service {
	t.Helper()

	logger, err := observability.NewLogger(observability.LoggingConfig{
		Level:  observability.LogLevelError,
		Format: observability.LogFormatJSON,
	})
	require.NoError(t, err)

	metrics := observability.NewMetricsManager(observability.MetricsConfig{Enabled: false})
	tracing, err := observability.NewTracingManager(observability.TracingConfig{Enabled: false})
	require.NoError(t, err)

	return NewService(ifc.NewGenerator(), blobs, records, logger, metrics, tracing, time.Hour)
}

func cabinetRequest() *Request {
	return &Request{
		Configuration: &models.Configuration{
			ProductFamily: models.FamilyHDCabinet,
			CustomDrawers: []models.Drawer{{Height: 250}, {Height: 150}},
		},
		Product: &models.Product{
			ID:   "hd-cabinet-base",
			Name: "HD Industrial Cabinet",
		},
		Pricing:       models.Pricing{BasePrice: 900, TotalPrice: 1100, Currency: "AUD"},
		ReferenceCode: "HD.560.2DR",
	}
}

func TestExportHappyPath(t *testing.T) {
	blobs := newMemBlobStore()
	records := newMemExportStore()
	svc := newTestService(t, blobs, records)

	result, err := svc.Export(context.Background(), cabinetRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, "HD.560.2DR", result.ReferenceCode)
	assert.Contains(t, result.IFCURL, "http://blobs.test/exports/")
	assert.Contains(t, result.DatasheetURL, ".json")
	assert.Greater(t, result.ByteSize, int64(0))

	// Both files landed in the blob store.
	require.Len(t, blobs.blobs, 2)
	var ifcText string
	var datasheet []byte
	for path, data := range blobs.blobs {
		if strings.HasSuffix(path, ".ifc") {
			ifcText = string(data)
		} else {
			datasheet = data
		}
	}
	assert.True(t, strings.HasPrefix(ifcText, "ISO-10303-21;"))
	assert.Equal(t, int64(len(ifcText)), result.ByteSize)

	var ds Datasheet
	require.NoError(t, json.Unmarshal(datasheet, &ds))
	assert.Equal(t, "hd-cabinet", ds.ProductFamily)
	assert.Equal(t, []float64{250, 150}, ds.DrawerHeights)
	assert.Equal(t, "250.150", ds.DrawerCode)

	// The metadata record was persisted.
	record, err := records.GetExport(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FamilyHDCabinet, record.ProductFamily)
}

func TestExportUnsupportedFamily(t *testing.T) {
	blobs := newMemBlobStore()
	records := newMemExportStore()
	svc := newTestService(t, blobs, records)

	req := cabinetRequest()
	req.Configuration.ProductFamily = models.ProductFamily("gantry-crane")

	_, err := svc.Export(context.Background(), req)
	require.Error(t, err)
	assert.True(t, utils.IsUnsupportedFamily(err))

	// Nothing was uploaded or recorded.
	assert.Empty(t, blobs.blobs)
	assert.Empty(t, records.records)
}

func TestExportUploadFailure(t *testing.T) {
	blobs := newMemBlobStore()
	blobs.putErr = utils.NewAppError(utils.CodeUploadFailed, "disk full", utils.ErrUploadFailed)
	records := newMemExportStore()
	svc := newTestService(t, blobs, records)

	_, err := svc.Export(context.Background(), cabinetRequest())
	require.Error(t, err)
	assert.Empty(t, records.records)
}

func TestExportSignedURLFailure(t *testing.T) {
	blobs := newMemBlobStore()
	blobs.signErr = errors.New("signer unavailable")
	records := newMemExportStore()
	svc := newTestService(t, blobs, records)

	_, err := svc.Export(context.Background(), cabinetRequest())
	require.Error(t, err)
	// Blobs were written before signing failed, but no record was persisted.
	assert.Len(t, blobs.blobs, 2)
	assert.Empty(t, records.records)
}

func TestExportRecordFailure(t *testing.T) {
	blobs := newMemBlobStore()
	records := newMemExportStore()
	records.recordErr = utils.NewAppError(utils.CodeInternal, "connection reset", utils.ErrInternal)
	svc := newTestService(t, blobs, records)

	_, err := svc.Export(context.Background(), cabinetRequest())
	require.Error(t, err)
}

func TestExportNilRequest(t *testing.T) {
	svc := newTestService(t, newMemBlobStore(), newMemExportStore())

	_, err := svc.Export(context.Background(), nil)
	require.Error(t, err)

	_, err = svc.Export(context.Background(), &Request{})
	require.Error(t, err)
}

func TestExportLiftBenchDatasheet(t *testing.T) {
	blobs := newMemBlobStore()
	svc := newTestService(t, blobs, newMemExportStore())

	req := cabinetRequest()
	req.Configuration = &models.Configuration{
		ProductFamily: models.FamilyLiftBench,
		Selections:    map[string]string{catalog.GroupLiftModel: "dl6"},
	}
	req.Product.Groups = []models.OptionGroup{
		{ID: catalog.GroupLiftModel, Options: []models.Option{{ID: "dl6", Code: "DL6", Label: "DL6 600kg"}}},
	}
	req.ReferenceCode = "LB.1500.DL6"

	result, err := svc.Export(context.Background(), req)
	require.NoError(t, err)

	var ds Datasheet
	for path, data := range blobs.blobs {
		if strings.HasSuffix(path, ".json") {
			require.NoError(t, json.Unmarshal(data, &ds))
		}
	}
	assert.Equal(t, "DL6", ds.LiftModel)
	assert.Equal(t, 1250.0, ds.Dimensions.Height)
	assert.Equal(t, result.ReferenceCode, ds.ReferenceCode)
}

func TestSanitizeReference(t *testing.T) {
	assert.Equal(t, "HD.560.2DR", sanitizeReference("HD.560.2DR"))
	assert.Equal(t, "a_b_c", sanitizeReference("a/b c"))
	assert.Equal(t, "export", sanitizeReference(""))
}

func TestListExportsClampsLimit(t *testing.T) {
	records := newMemExportStore()
	svc := newTestService(t, newMemBlobStore(), records)

	_, err := svc.ListExports(context.Background(), -5, -1)
	require.NoError(t, err)
}
