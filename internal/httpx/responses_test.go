package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_BarePayload(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusCreated, map[string]any{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestJSON_NilIsNull(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, nil)

	assert.Equal(t, "null\n", w.Body.String())
}

func TestJSONError_IncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ContextWithRequestID(req.Context(), "req-1"))
	w := httptest.NewRecorder()

	JSONError(w, req, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "ALREADY_EXISTS", body.Error.Code)
	assert.Equal(t, "req-1", body.Meta["request_id"])
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("id", tt.raw)

			got, err := PathID(req, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
