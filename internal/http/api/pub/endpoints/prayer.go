package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	"github.com/minaret-dev/minaret/internal/http/api/pub/packets"
	"github.com/minaret-dev/minaret/internal/prayer"
	"github.com/minaret-dev/minaret/internal/redis"
)

const dayFormat = "2006-01-02"

type PrayerController struct {
	store db.Store
	clock prayer.Clock
}

func NewPrayerController(store db.Store, clock prayer.Clock) *PrayerController {
	if clock == nil {
		clock = prayer.RealClock{}
	}
	return &PrayerController{store: store, clock: clock}
}

// PrayerModule mounts the public prayer time and countdown endpoints.
func PrayerModule(store db.Store) api.Module {
	ctl := NewPrayerController(store, prayer.RealClock{})
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/mosques/:id/prayer-times", ctl.getPrayerTimes)
		c.PUBLIC_GET("/mosques/:id/next-prayer", ctl.getNextPrayer)
	})
}

// GET /api/public/mosques/:id/prayer-times?day=YYYY-MM-DD
func (p *PrayerController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	mosque, apiErr := approvedMosque(p.store, ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	dayParam := ctx.DefaultQuery("day", p.clock.Now().Format(dayFormat))
	day, err := time.Parse(dayFormat, dayParam)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "day must be YYYY-MM-DD"}
	}

	stored, err := p.store.GetPrayerTimes(mosque.ID, day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no prayer times for that day"}
	}

	times := make(map[string]string)
	display := make(map[string]string)
	for name, value := range map[string]*string{
		"fajr":    stored.Fajr,
		"dhuhr":   stored.Dhuhr,
		"asr":     stored.Asr,
		"maghrib": stored.Maghrib,
		"isha":    stored.Isha,
		"jummah":  stored.Jummah,
	} {
		if value == nil || *value == "" {
			continue
		}
		times[name] = *value
		display[name] = prayer.To12Hour(*value)
	}

	return packets.PrayerTimesResponse{
		MosqueID: mosque.ID,
		Day:      day.Format(dayFormat),
		Times:    times,
		Display:  display,
	}, nil
}

// GET /api/public/mosques/:id/next-prayer
func (p *PrayerController) getNextPrayer(ctx *gin.Context) (any, *api.APIError) {
	mosque, apiErr := approvedMosque(p.store, ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	cacheKey := fmt.Sprintf("mosque:%d:next_prayer", mosque.ID)
	if cached, ok := p.cachedResponse(ctx, cacheKey); ok {
		return cached, nil
	}

	now := p.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	response := packets.NextPrayerResponse{Available: false}
	stored, err := p.store.GetPrayerTimes(mosque.ID, day)
	if err == nil {
		if next := prayer.ComputeNextPrayer(stored.Daily(), now); next != nil {
			countdown := prayer.FormatCountdown(next.SecondsRemaining)
			response = packets.NextPrayerResponse{
				Available:        true,
				Name:             next.Name,
				Time:             next.Time,
				TimeDisplay:      prayer.To12Hour(next.Time),
				SecondsRemaining: next.SecondsRemaining,
				Countdown:        countdown,
				Urgent:           prayer.Urgent(countdown),
			}
		}
	}

	p.cacheResponse(ctx, cacheKey, response)
	return response, nil
}

// cache TTL never exceeds the countdown itself, so a cached entry can't
// outlive the prayer it points at.
func cacheTTL(r packets.NextPrayerResponse) time.Duration {
	const maxTTL = 60
	ttl := maxTTL
	if r.Available && r.SecondsRemaining < ttl {
		ttl = r.SecondsRemaining
	}
	if ttl < 1 {
		ttl = 1
	}
	return time.Duration(ttl) * time.Second
}

func (p *PrayerController) cachedResponse(ctx *gin.Context, key string) (packets.NextPrayerResponse, bool) {
	var response packets.NextPrayerResponse
	if !redis.Enabled() {
		return response, false
	}
	raw, ok := redis.Get(ctx, key)
	if !ok {
		return response, false
	}
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("dropping malformed cached next prayer")
		redis.Del(ctx, key)
		return response, false
	}
	return response, true
}

func (p *PrayerController) cacheResponse(ctx *gin.Context, key string, response packets.NextPrayerResponse) {
	if !redis.Enabled() {
		return
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	redis.Set(ctx, key, raw, cacheTTL(response))
}
