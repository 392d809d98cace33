package httpx

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]int{"count": 3})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 400, "category is required")

	assert.Equal(t, 400, rec.Code)
	assert.JSONEq(t, `{"error":"category is required"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var payload struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest("POST", "/v1/analyze", strings.NewReader(`{"title":"Port Strike"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &payload))
	assert.Equal(t, "Port Strike", payload.Title)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var payload struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest("POST", "/v1/analyze", strings.NewReader(`{"titel":"typo"}`))
	err := DecodeJSON(httptest.NewRecorder(), req, &payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request")
}
