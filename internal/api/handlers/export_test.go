package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiegroup/boscotek2026-sub003/internal/export"
	"github.com/opiegroup/boscotek2026-sub003/internal/ifc"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/internal/observability"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

type stubBlobStore struct {
	blobs map[string][]byte
}

func (s *stubBlobStore) Put(ctx context.Context, path string, data []byte) error {
	s.blobs[path] = data
	return nil
}

func (s *stubBlobStore) SignedURL(path string, ttl time.Duration) (string, error) {
	return "http://localhost:8080/blobs/" + path, nil
}

func (s *stubBlobStore) Ping(ctx context.Context) error { return nil }
func (s *stubBlobStore) Close() error                   { return nil }

type stubExportStore struct {
	records map[uuid.UUID]*models.ExportRecord
}

func (s *stubExportStore) RecordExport(ctx context.Context, record *models.ExportRecord) error {
	s.records[record.ID] = record
	return nil
}

func (s *stubExportStore) GetExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, utils.NewAppError(utils.CodeNotFound, "export not found", utils.ErrNotFound)
	}
	return record, nil
}

func (s *stubExportStore) ListExports(ctx context.Context, limit, offset int) ([]*models.ExportRecord, error) {
	var out []*models.ExportRecord
	for _, record := range s.records {
		out = append(out, record)
	}
	return out, nil
}

func (s *stubExportStore) Ping(ctx context.Context) error { return nil }
func (s *stubExportStore) Close() error                   { return nil }

func newTestRouter(t *testing.T) (*chi.Mux, *stubExportStore) {
	t.Helper()

	logger, err := observability.NewLogger(observability.LoggingConfig{
		Level:  observability.LogLevelError,
		Format: observability.LogFormatJSON,
	})
	require.NoError(t, err)

	metrics := observability.NewMetricsManager(observability.MetricsConfig{Enabled: false})
	tracing, err := observability.NewTracingManager(observability.TracingConfig{Enabled: false})
	require.NoError(t, err)

	blobs := &stubBlobStore{blobs: make(map[string][]byte)}
	records := &stubExportStore{records: make(map[uuid.UUID]*models.ExportRecord)}
	service := export.NewService(ifc.NewGenerator(), blobs, records, logger, metrics, tracing, time.Hour)

	handler := NewExportHandler(service)
	router := chi.NewRouter()
	router.Route("/api/v1/exports", func(r chi.Router) {
		r.Post("/", handler.CreateExport)
		r.Get("/", handler.ListExports)
		r.Get("/{exportID}", handler.GetExport)
	})
	return router, records
}

func createBody(t *testing.T, family string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"configuration": map[string]any{
			"product_family": family,
			"custom_drawers": []map[string]any{{"height": 250}, {"height": 150}},
		},
		"product": map[string]any{
			"id":   "hd-cabinet-base",
			"name": "HD Industrial Cabinet",
		},
		"pricing": map[string]any{
			"base_price":  900.0,
			"total_price": 1100.0,
			"currency":    "AUD",
		},
		"reference_code": "HD.560.2DR",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateExportReturns201(t *testing.T) {
	router, records := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", createBody(t, "hd-cabinet"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "HD.560.2DR", resp.ReferenceCode)
	assert.Contains(t, resp.IFCURL, ".ifc")
	assert.Contains(t, resp.DatasheetURL, ".json")
	assert.Greater(t, resp.ByteSize, int64(0))
	assert.Len(t, records.records, 1)
}

func TestCreateExportRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateExportRejectsMissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	body, err := json.Marshal(map[string]any{
		"configuration": map[string]any{"product_family": "hd-cabinet"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// reference_code is required
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateExportUnknownFamilyReturns422(t *testing.T) {
	router, records := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", createBody(t, "gantry-crane"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, records.records)
}

func TestGetExportInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExportNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetExportRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/exports", createBody(t, "workbench"))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	require.Equal(t, http.StatusCreated, createRec.Code)

	var created ExportResponse
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &created))

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+created.ID.String(), nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)
	var record ExportRecordResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &record))
	assert.Equal(t, created.ID, record.ID)
	assert.Equal(t, "workbench", record.ProductFamily)
}

func TestListExports(t *testing.T) {
	router, _ := newTestRouter(t)

	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/exports", createBody(t, "tool-cart"))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	require.Equal(t, http.StatusCreated, createRec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports?limit=10&offset=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list ExportListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Exports, 1)
	assert.Equal(t, 10, list.Limit)
}
