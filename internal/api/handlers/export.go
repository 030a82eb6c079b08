package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/opiegroup/boscotek2026-sub003/internal/api/middleware"
	"github.com/opiegroup/boscotek2026-sub003/internal/export"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

type ExportHandler struct {
	service  *export.Service
	validate *validator.Validate
}

func NewExportHandler(service *export.Service) *ExportHandler {
	return &ExportHandler{
		service:  service,
		validate: validator.New(),
	}
}

type ExportResponse struct {
	ID            uuid.UUID `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	IFCURL        string    `json:"ifc_url"`
	DatasheetURL  string    `json:"datasheet_url"`
	ByteSize      int64     `json:"byte_size"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExportRecordResponse struct {
	ID            uuid.UUID `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	ProductFamily string    `json:"product_family"`
	ByteSize      int64     `json:"byte_size"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

type ExportListResponse struct {
	Exports []ExportRecordResponse `json:"exports"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

func (h *ExportHandler) CreateExport(w http.ResponseWriter, r *http.Request) {
	var req export.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.SendValidationError(w, r, "invalid request body", map[string]any{
			"error": err.Error(),
		})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		middleware.SendValidationError(w, r, "request validation failed", map[string]any{
			"error": err.Error(),
		})
		return
	}

	result, err := h.service.Export(r.Context(), &req)
	if err != nil {
		statusCode := middleware.HTTPErrorFromAppError(err)
		middleware.SendError(w, r, err, statusCode)
		return
	}

	response := resultToResponse(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

func (h *ExportHandler) GetExport(w http.ResponseWriter, r *http.Request) {
	exportIDStr := chi.URLParam(r, "exportID")

	exportID, err := uuid.Parse(exportIDStr)
	if err != nil {
		middleware.SendValidationError(w, r, "invalid export ID", map[string]any{
			"export_id": exportIDStr,
		})
		return
	}

	record, err := h.service.GetExport(r.Context(), exportID)
	if err != nil {
		statusCode := middleware.HTTPErrorFromAppError(err)
		middleware.SendError(w, r, err, statusCode)
		return
	}

	response := recordToResponse(record)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (h *ExportHandler) ListExports(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 50)
	offset := parseIntParam(r, "offset", 0)

	records, err := h.service.ListExports(r.Context(), limit, offset)
	if err != nil {
		statusCode := middleware.HTTPErrorFromAppError(err)
		middleware.SendError(w, r, err, statusCode)
		return
	}

	response := ExportListResponse{
		Exports: make([]ExportRecordResponse, 0, len(records)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, record := range records {
		response.Exports = append(response.Exports, recordToResponse(record))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func resultToResponse(result *models.ExportResult) ExportResponse {
	return ExportResponse{
		ID:            result.ID,
		ReferenceCode: result.ReferenceCode,
		IFCURL:        result.IFCURL,
		DatasheetURL:  result.DatasheetURL,
		ByteSize:      result.ByteSize,
		DurationMs:    result.Duration.Milliseconds(),
		CreatedAt:     result.CreatedAt,
	}
}

func recordToResponse(record *models.ExportRecord) ExportRecordResponse {
	return ExportRecordResponse{
		ID:            record.ID,
		ReferenceCode: record.ReferenceCode,
		ProductFamily: string(record.ProductFamily),
		ByteSize:      record.ByteSize,
		DurationMs:    record.Duration.Milliseconds(),
		CreatedAt:     record.CreatedAt,
	}
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
