package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dravedigitals/careerguard/server/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	writeMessage(rec, http.StatusBadRequest, "Invalid request body")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestWriteServerErrorSurfacesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServerError(rec, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["message"])
	assert.Equal(t, "connection reset", body["error"])
}

func TestWriteUploadErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{service.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{service.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{service.ErrTooManyFiles, http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeUploadError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
