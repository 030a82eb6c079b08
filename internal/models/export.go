package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord is the persisted metadata row for one generated export.
type ExportRecord struct {
	ID            uuid.UUID     `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	ProductFamily ProductFamily `json:"product_family"`
	IFCPath       string        `json:"ifc_path"`
	DatasheetPath string        `json:"datasheet_path"`
	ByteSize      int64         `json:"byte_size"`
	Duration      time.Duration `json:"duration"`
	CreatedAt     time.Time     `json:"created_at"`
}

func NewExportRecord(referenceCode string, family ProductFamily) *ExportRecord {
	return &ExportRecord{
		ID:            uuid.New(),
		ReferenceCode: referenceCode,
		ProductFamily: family,
		CreatedAt:     time.Now(),
	}
}

// ExportResult is returned to the caller once the file is generated, uploaded
// and recorded.
type ExportResult struct {
	ID            uuid.UUID     `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	IFCURL        string        `json:"ifc_url"`
	DatasheetURL  string        `json:"datasheet_url"`
	ByteSize      int64         `json:"byte_size"`
	Duration      time.Duration `json:"duration"`
	CreatedAt     time.Time     `json:"created_at"`
}
