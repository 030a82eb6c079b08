package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/opiegroup/boscotek2026-sub003/internal/api/middleware"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

// BlobReader is the subset of the local blob store needed to serve signed
// downloads. Object-storage backends serve their own URLs and skip this
// handler entirely.
type BlobReader interface {
	Verify(path string, expires int64, signature string) bool
	Open(path string) ([]byte, error)
}

type BlobHandler struct {
	blobs BlobReader
}

func NewBlobHandler(blobs BlobReader) *BlobHandler {
	return &BlobHandler{blobs: blobs}
}

func (h *BlobHandler) Download(w http.ResponseWriter, r *http.Request) {
	// The wildcard value keeps the escaping of the request path, and signed
	// URLs escape the blob path, so unescape before verifying.
	path, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || path == "" {
		middleware.SendValidationError(w, r, "blob path is required", nil)
		return
	}

	expires, err := strconv.ParseInt(r.URL.Query().Get("expires"), 10, 64)
	if err != nil {
		middleware.SendValidationError(w, r, "invalid expires parameter", nil)
		return
	}
	signature := r.URL.Query().Get("signature")

	if time.Now().Unix() > expires {
		middleware.SendError(w, r,
			utils.NewAppError(utils.CodeTimeout, "download link has expired", utils.ErrTimeout),
			http.StatusForbidden)
		return
	}

	if !h.blobs.Verify(path, expires, signature) {
		middleware.SendError(w, r,
			utils.NewAppError(utils.CodeInvalidInput, "invalid download signature", utils.ErrInvalidInput),
			http.StatusForbidden)
		return
	}

	data, err := h.blobs.Open(path)
	if err != nil {
		if utils.IsNotFound(err) {
			middleware.SendNotFoundError(w, r, "blob")
			return
		}
		middleware.SendInternalError(w, r, "failed to read blob")
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(path))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func contentTypeFor(path string) string {
	switch {
	case strings.HasSuffix(path, ".ifc"):
		return "application/x-step"
	case strings.HasSuffix(path, ".json"):
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
