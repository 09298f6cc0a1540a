package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/pipe-sizing/internal/adapters/http/dto"
	"github.com/jsamuelsen/pipe-sizing/internal/domain"
)

// perform sends body (a string, or anything JSON-encodable) to the router.
func perform(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, w)
}

func quantity(t *testing.T, name string, value float64, tag string) domain.Quantity {
	t.Helper()

	q, err := domain.NewRawQuantity(name, value, tag)
	require.NoError(t, err)

	return q
}

func ptr[T any](v T) *T { return &v }
