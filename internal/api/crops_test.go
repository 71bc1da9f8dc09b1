package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

const barleyBody = `{
	"name": "Barley",
	"description": "Hardy cereal",
	"growth_duration_days": 110,
	"optimal_ph_min": 6.0, "optimal_ph_max": 7.5,
	"optimal_temp_min": 12, "optimal_temp_max": 25,
	"optimal_humidity_min": 50, "optimal_humidity_max": 70,
	"optimal_rainfall_min": 400, "optimal_rainfall_max": 800,
	"suitable_soil_types": ["Loamy"],
	"season": "Rabi"
}`

func TestCreateCropRequiresAdminToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/crops", bytes.NewBufferString(barleyBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCropAdminLifecycle(t *testing.T) {
	router, ms, ev := setupTestRouter(t)

	// Create
	req := httptest.NewRequest("POST", "/api/v1/crops", bytes.NewBufferString(barleyBody))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created catalog.Crop
	json.NewDecoder(w.Body).Decode(&created)
	assert.Equal(t, "Barley", created.Name)
	assert.NotEmpty(t, created.ID)

	// Update
	var update map[string]interface{}
	json.Unmarshal([]byte(barleyBody), &update)
	update["description"] = "Hardy winter cereal"
	body, _ := json.Marshal(update)
	req = httptest.NewRequest("PUT", "/api/v1/crops/"+created.ID.String(), bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := ms.GetCrop(req.Context(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hardy winter cereal", stored.Description)

	// Delete
	req = httptest.NewRequest("DELETE", "/api/v1/crops/"+created.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	gone, _ := ms.GetCrop(req.Context(), created.ID)
	assert.Nil(t, gone)

	subjects := ev.subjects()
	assert.Len(t, subjects, 3)
	assert.Contains(t, subjects[0], ".created")
	assert.Contains(t, subjects[1], ".updated")
	assert.Contains(t, subjects[2], ".deleted")
}

func TestCreateCropRejectsInvalidProfile(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := `{"name":"Broken","optimal_ph_min":9,"optimal_ph_max":5,"suitable_soil_types":["Loamy"],"season":"Rabi"}`
	req := httptest.NewRequest("POST", "/api/v1/crops", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateCropNotFound(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("PUT", "/api/v1/crops/00000000-0000-0000-0000-000000000001", bytes.NewBufferString(barleyBody))
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
