package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/announce"
	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/admin/control/packets"
	"github.com/minaret-dev/minaret/internal/model"
	"github.com/minaret-dev/minaret/internal/prayer"
	"github.com/minaret-dev/minaret/internal/redis"
)

const dayFormat = "2006-01-02"

type MosqueController struct {
	store     db.Store
	announcer *announce.Announcer // nil when MQTT is disabled
	clock     prayer.Clock
}

func NewMosqueController(store db.Store, announcer *announce.Announcer, clock prayer.Clock) *MosqueController {
	if clock == nil {
		clock = prayer.RealClock{}
	}
	return &MosqueController{store: store, announcer: announcer, clock: clock}
}

func MosqueModule(store db.Store, announcer *announce.Announcer) api.Module {
	ctl := NewMosqueController(store, announcer, prayer.RealClock{})
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/mosques", ctl.listOwnMosques)
		c.POST("/mosques", ctl.createMosque)
		c.PUT("/mosques/:id", ctl.updateMosque)
		c.DELETE("/mosques/:id", ctl.deleteMosque)

		// per-day prayer times
		c.PUT("/mosques/:id/prayer-times", ctl.upsertPrayerTimes)
		c.GET("/mosques/:id/prayer-times", ctl.getPrayerTimes)
	})
}

// ownedMosque loads the mosque and checks the caller owns it.
func (m *MosqueController) ownedMosque(ctx *gin.Context, user *model.User) (model.Mosque, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return model.Mosque{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	mosque, err := m.store.GetMosqueByID(id)
	if err != nil {
		return model.Mosque{}, &api.APIError{Code: http.StatusNotFound, Message: "mosque not found"}
	}
	if mosque.CreatedBy != user.ID {
		return model.Mosque{}, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return mosque, nil
}

func (m *MosqueController) listOwnMosques(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := m.store.ListMosquesByOwner(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list mosques"}
	}

	response := make([]packets.MosqueResponse, 0, len(list))
	for _, it := range list {
		response = append(response, mosqueResponse(it))
	}
	return response, nil
}

func (m *MosqueController) createMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	mosque, err := m.store.CreateMosque(request.Name, request.Address, request.City, request.Contact, true, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create mosque"}
	}
	return mosqueResponse(mosque), nil
}

func (m *MosqueController) updateMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	mosque, apiErr := m.ownedMosque(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateMosqueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := m.store.UpdateMosque(mosque.ID, request.Name, request.Address, request.City, request.Contact); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update mosque"}
	}

	updated, err := m.store.GetMosqueByID(mosque.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated mosque"}
	}
	return mosqueResponse(updated), nil
}

func (m *MosqueController) deleteMosque(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	mosque, apiErr := m.ownedMosque(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := m.store.DeleteMosque(mosque.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete mosque"}
	}
	if m.announcer != nil {
		m.announcer.Drop(mosque.ID)
	}

	return gin.H{"message": "deleted"}, nil
}

// PUT /api/admin/mosques/:id/prayer-times
func (m *MosqueController) upsertPrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	mosque, apiErr := m.ownedMosque(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpsertPrayerTimesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	day, err := time.Parse(dayFormat, request.Day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day must be YYYY-MM-DD"}
	}

	stored, err := m.store.UpsertPrayerTimes(mosque.ID, day, db.PrayerTimesInput{
		Fajr:    request.Fajr,
		Dhuhr:   request.Dhuhr,
		Asr:     request.Asr,
		Maghrib: request.Maghrib,
		Isha:    request.Isha,
		Jummah:  request.Jummah,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store prayer times"}
	}

	// fresh data must be visible immediately: drop the cached countdown and
	// push the replacement into the announcer
	if redis.Enabled() {
		redis.Del(ctx, fmt.Sprintf("mosque:%d:next_prayer", mosque.ID))
	}
	if m.announcer != nil {
		m.announcer.UpdateTimes(mosque.ID, stored.Daily())
	}
	log.Info().Int("mosque_id", mosque.ID).Str("day", request.Day).Msg("prayer times updated")

	return prayerTimesResponse(stored), nil
}

// GET /api/admin/mosques/:id/prayer-times?day=YYYY-MM-DD
func (m *MosqueController) getPrayerTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	mosque, apiErr := m.ownedMosque(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	dayParam := ctx.DefaultQuery("day", m.clock.Now().Format(dayFormat))
	day, err := time.Parse(dayFormat, dayParam)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day must be YYYY-MM-DD"}
	}

	stored, err := m.store.GetPrayerTimes(mosque.ID, day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no prayer times for that day"}
	}
	return prayerTimesResponse(stored), nil
}

func mosqueResponse(m model.Mosque) packets.MosqueResponse {
	return packets.MosqueResponse{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		Contact:   m.Contact,
		Approved:  m.Approved,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func prayerTimesResponse(p model.MosquePrayerTimes) packets.PrayerTimesResponse {
	return packets.PrayerTimesResponse{
		ID:       p.ID,
		MosqueID: p.MosqueID,
		Day:      p.Day.Format(dayFormat),
		Fajr:     p.Fajr,
		Dhuhr:    p.Dhuhr,
		Asr:      p.Asr,
		Maghrib:  p.Maghrib,
		Isha:     p.Isha,
		Jummah:   p.Jummah,
	}
}
