package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/pub/packets"
	"github.com/minaret-dev/minaret/internal/model"
)

type frozenClock struct{ now time.Time }

func (f frozenClock) Now() time.Time { return f.now }

func str(s string) *string { return &s }

// setupPrayerRouter mounts the public prayer endpoints against a stub store
// with a pinned clock.
func setupPrayerRouter(store db.Store, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	ctl := NewPrayerController(store, frozenClock{now: now})
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/public"}, api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/mosques/:id/prayer-times", ctl.getPrayerTimes)
		c.PUBLIC_GET("/mosques/:id/next-prayer", ctl.getNextPrayer)
	}))
	return r
}

func seedMosqueWithTimes(t *testing.T, store *stubStore, day time.Time) model.Mosque {
	t.Helper()
	mosque := store.addMosque(model.Mosque{Name: "Central Mosque", Address: "1 Main St", City: "Leeds", Approved: true, CreatedBy: 1})
	_, err := store.UpsertPrayerTimes(mosque.ID, day, db.PrayerTimesInput{
		Fajr:    str("05:00"),
		Dhuhr:   str("13:00"),
		Asr:     str("16:30"),
		Maghrib: str("18:45"),
		Isha:    str("20:00"),
	})
	require.NoError(t, err)
	return mosque
}

func TestGetNextPrayer_MondayAfternoon(t *testing.T) {
	// Monday
	now := time.Date(2026, time.August, 24, 17, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, now.Weekday())
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	store := newStubStore()
	seedMosqueWithTimes(t, store, day)
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/next-prayer", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.NextPrayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Available)
	assert.Equal(t, "Maghrib", resp.Name)
	assert.Equal(t, "18:45", resp.Time)
	assert.Equal(t, "06:45 PM", resp.TimeDisplay)
	assert.Equal(t, 6300, resp.SecondsRemaining)
	assert.Equal(t, "01:45:00", resp.Countdown)
	assert.False(t, resp.Urgent)
}

func TestGetNextPrayer_UrgentUnderThirtyMinutes(t *testing.T) {
	now := time.Date(2026, time.August, 24, 18, 20, 0, 0, time.UTC)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	store := newStubStore()
	seedMosqueWithTimes(t, store, day)
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/next-prayer", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.NextPrayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Maghrib", resp.Name)
	assert.Equal(t, "25:00", resp.Countdown)
	assert.True(t, resp.Urgent)
}

func TestGetNextPrayer_NoTimesConfigured(t *testing.T) {
	now := time.Date(2026, time.August, 24, 17, 0, 0, 0, time.UTC)

	store := newStubStore()
	store.addMosque(model.Mosque{Name: "Quiet Mosque", Address: "2 Side St", City: "York", Approved: true, CreatedBy: 1})
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/next-prayer", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.NextPrayerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.Available)
	assert.Empty(t, resp.Name)
}

func TestGetNextPrayer_UnknownMosque(t *testing.T) {
	now := time.Date(2026, time.August, 24, 17, 0, 0, 0, time.UTC)
	router := setupPrayerRouter(newStubStore(), now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/99/next-prayer", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNextPrayer_UnapprovedMosqueHidden(t *testing.T) {
	now := time.Date(2026, time.August, 24, 17, 0, 0, 0, time.UTC)

	store := newStubStore()
	store.addMosque(model.Mosque{Name: "Pending Mosque", Address: "3 Back St", City: "Hull", Approved: false, CreatedBy: 1})
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/next-prayer", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPrayerTimes_ReturnsRawAndDisplayForms(t *testing.T) {
	now := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	store := newStubStore()
	seedMosqueWithTimes(t, store, day)
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/prayer-times", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp packets.PrayerTimesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "18:45", resp.Times["maghrib"])
	assert.Equal(t, "06:45 PM", resp.Display["maghrib"])
	assert.Equal(t, "05:00", resp.Times["fajr"])
	assert.Equal(t, "05:00 AM", resp.Display["fajr"])
	// jummah was never configured
	_, hasJummah := resp.Times["jummah"]
	assert.False(t, hasJummah)
}

func TestGetPrayerTimes_MissingDay(t *testing.T) {
	now := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)

	store := newStubStore()
	store.addMosque(model.Mosque{Name: "Central Mosque", Address: "1 Main St", City: "Leeds", Approved: true, CreatedBy: 1})
	router := setupPrayerRouter(store, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/mosques/1/prayer-times?day=2026-01-01", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
