package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gohttp "github.com/km-arc/microioc/framework/http"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestResponse_Success(t *testing.T) {
	rr := httptest.NewRecorder()
	gohttp.NewResponse(rr).Success([]string{"a"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	assert.Equal(t, []any{"a"}, decode(t, rr)["data"])
}

func TestResponse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		send    func(res *gohttp.Response)
		status  int
		message string
	}{
		{"error", func(res *gohttp.Response) { res.Error(http.StatusBadRequest, "bad key") }, http.StatusBadRequest, "bad key"},
		{"not found default", func(res *gohttp.Response) { res.NotFound("") }, http.StatusNotFound, "Not found."},
		{"not found custom", func(res *gohttp.Response) { res.NotFound("no such key") }, http.StatusNotFound, "no such key"},
		{"method not allowed", func(res *gohttp.Response) { res.MethodNotAllowed(http.MethodPost) }, http.StatusMethodNotAllowed, "POST is not allowed here."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.send(gohttp.NewResponse(rr))

			assert.Equal(t, tt.status, rr.Code)
			body := decode(t, rr)
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}
