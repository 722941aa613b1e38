package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouzayen1/SalesApexAi2.5/internal/model"
)

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleRehash(t *testing.T) {
	body := `{
		"vehicleYear": 2024,
		"vehicleMake": "Toyota",
		"vehicleModel": "Camry",
		"vehicleMileage": 30000,
		"vehicleRetailPrice": 20000,
		"vehicleCost": 15000,
		"state": "ca",
		"customerFico": 700,
		"monthlyIncome": 6000,
		"downPayment": 5000,
		"targetPayment": 450
	}`

	rec := httptest.NewRecorder()
	handleRehash(rec, httptest.NewRequest(http.MethodPost, "/api/rehash", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.RehashResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Deals, 3)
	assert.Positive(t, result.BookValue)
	assert.NotEmpty(t, result.Triage.Badge)
}

func TestHandleRehash_InvalidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	handleRehash(rec, httptest.NewRequest(http.MethodPost, "/api/rehash", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRehash_ValidationFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	handleRehash(rec, httptest.NewRequest(http.MethodPost, "/api/rehash", strings.NewReader(`{"vehicleYear": 1200}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "vehicle year")
}

func TestHandleTriage(t *testing.T) {
	body := `{
		"deals": [
			{"id": "1", "approved": true, "monthlyPayment": 420, "totalDealerProfit": 4000}
		],
		"targetPayment": 400
	}`

	rec := httptest.NewRecorder()
	handleTriage(rec, httptest.NewRequest(http.MethodPost, "/api/triage", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var decision model.TriageDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decision))
	require.NotNil(t, decision.BestDealID)
	assert.Equal(t, "1", *decision.BestDealID)
}

func TestHandlePayment(t *testing.T) {
	rec := httptest.NewRecorder()
	handlePayment(rec, httptest.NewRequest(http.MethodPost, "/api/payment",
		strings.NewReader(`{"price": 25000, "downPayment": 5000}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 20_000 at the default 7% over 60 months.
	assert.InDelta(t, 396.02, resp["monthlyPayment"], 0.01)
}

func TestHandlePayment_NonPositivePrice(t *testing.T) {
	rec := httptest.NewRecorder()
	handlePayment(rec, httptest.NewRequest(http.MethodPost, "/api/payment",
		strings.NewReader(`{"price": 0}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReliability(t *testing.T) {
	rec := httptest.NewRecorder()
	handleReliability(rec, httptest.NewRequest(http.MethodGet,
		"/api/vehicles/reliability?make=Nissan&model=Altima", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cvt")
}

func TestHandleReliability_UnknownVehicle(t *testing.T) {
	rec := httptest.NewRecorder()
	handleReliability(rec, httptest.NewRequest(http.MethodGet,
		"/api/vehicles/reliability?make=Yugo", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
