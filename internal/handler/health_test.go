package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}, without authentication.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	router := newTestRouter(&mockTripService{}, &mockExpenseService{}, &mockAdviceService{})

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}
