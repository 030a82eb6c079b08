package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

func TestSendErrorCarriesChiRequestID(t *testing.T) {
	handler := chimiddleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SendValidationError(w, r, "bad input", nil)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error.RequestID)
}

func TestSendErrorPrefersHeaderRequestID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SendInternalError(w, r, "boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-42", resp.Error.RequestID)
}

func TestHTTPErrorFromAppError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{utils.NewAppError(utils.CodeNotFound, "", nil), http.StatusNotFound},
		{utils.NewAppError(utils.CodeValidation, "", nil), http.StatusBadRequest},
		{utils.NewAppError(utils.CodeUnsupportedFamily, "", nil), http.StatusUnprocessableEntity},
		{utils.NewAppError(utils.CodeUnsupportedAccessory, "", nil), http.StatusUnprocessableEntity},
		{utils.NewAppError(utils.CodeUploadFailed, "", nil), http.StatusBadGateway},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPErrorFromAppError(tc.err))
	}
}
