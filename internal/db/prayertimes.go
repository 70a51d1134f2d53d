package db

import (
	"time"

	"github.com/minaret-dev/minaret/internal/model"
	"github.com/rs/zerolog/log"
)

// PrayerTimesInput carries the raw strings for one day's upsert. Nil fields
// clear the corresponding column.
type PrayerTimesInput struct {
	Fajr    *string
	Dhuhr   *string
	Asr     *string
	Maghrib *string
	Isha    *string
	Jummah  *string
}

func UpsertPrayerTimes(mosqueID int, day time.Time, in PrayerTimesInput) (model.MosquePrayerTimes, error) {
	var p model.MosquePrayerTimes
	const q = `
	INSERT INTO mosque_prayer_times
	  (mosque_id, day, fajr, dhuhr, asr, maghrib, isha, jummah, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	ON CONFLICT (mosque_id, day) DO UPDATE SET
	  fajr = EXCLUDED.fajr,
	  dhuhr = EXCLUDED.dhuhr,
	  asr = EXCLUDED.asr,
	  maghrib = EXCLUDED.maghrib,
	  isha = EXCLUDED.isha,
	  jummah = EXCLUDED.jummah,
	  updated_at = now()
	RETURNING id, mosque_id, day, fajr, dhuhr, asr, maghrib, isha, jummah, created_at, updated_at;`
	err := DB.Get(&p, q, mosqueID, day, in.Fajr, in.Dhuhr, in.Asr, in.Maghrib, in.Isha, in.Jummah)
	if err != nil {
		log.Error().Err(err).Int("mosque_id", mosqueID).Msg("UpsertPrayerTimes failed")
		return model.MosquePrayerTimes{}, err
	}
	return p, nil
}

// GetPrayerTimes fetches one mosque's times for one day. Returns
// sql.ErrNoRows via the driver when the day has no row.
func GetPrayerTimes(mosqueID int, day time.Time) (model.MosquePrayerTimes, error) {
	var p model.MosquePrayerTimes
	err := DB.Get(&p, `
	SELECT id, mosque_id, day, fajr, dhuhr, asr, maghrib, isha, jummah, created_at, updated_at
	  FROM mosque_prayer_times
	 WHERE mosque_id = $1 AND day = $2;`, mosqueID, day)
	return p, err
}
