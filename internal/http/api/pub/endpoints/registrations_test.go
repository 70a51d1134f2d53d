package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/pub/packets"
	"github.com/minaret-dev/minaret/internal/model"
)

func setupRegistrationRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/public"}, RegistrationModule(store))
	return r
}

func TestSubmitRegistration(t *testing.T) {
	store := newStubStore()
	router := setupRegistrationRouter(store)

	body, _ := json.Marshal(map[string]any{
		"mosque_name":     "Masjid An-Noor",
		"address":         "12 High Street",
		"city":            "Bradford",
		"submitter_email": "imam@example.com",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/registrations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.RegistrationStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, model.RegistrationPending, resp.Status)
	assert.Nil(t, resp.MosqueID)

	// the reference resolves right away
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/registrations/"+resp.Reference, nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitRegistration_RejectsMissingFields(t *testing.T) {
	router := setupRegistrationRouter(newStubStore())

	body, _ := json.Marshal(map[string]any{"mosque_name": "No Address"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/registrations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationStatus_Unknown(t *testing.T) {
	router := setupRegistrationRouter(newStubStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/registrations/no-such-ref", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovedRegistrationExposesMosque(t *testing.T) {
	store := newStubStore()
	router := setupRegistrationRouter(store)

	created, err := store.CreateRegistration("ref-1", "Masjid Al-Falah", "3 Mill Lane", "Leeds", nil, "admin@example.com")
	require.NoError(t, err)

	_, err = store.ApproveRegistration(created.ID, 7, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/registrations/ref-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.RegistrationStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, model.RegistrationApproved, resp.Status)
	require.NotNil(t, resp.MosqueID)

	// and the new mosque is publicly discoverable
	mosque, err := store.GetMosqueByID(*resp.MosqueID)
	require.NoError(t, err)
	assert.True(t, mosque.Approved)
}
