package model

import (
	"time"

	"github.com/minaret-dev/minaret/internal/prayer"
)

// MosquePrayerTimes is one mosque's configured times for one calendar day.
// Times are kept as the raw strings the mosque entered ("05:15" or
// "5:15 PM"); parsing happens in the prayer package.
type MosquePrayerTimes struct {
	ID        int       `db:"id"         json:"id"`
	MosqueID  int       `db:"mosque_id"  json:"mosque_id"`
	Day       time.Time `db:"day"        json:"day"`
	Fajr      *string   `db:"fajr"       json:"fajr"`
	Dhuhr     *string   `db:"dhuhr"      json:"dhuhr"`
	Asr       *string   `db:"asr"        json:"asr"`
	Maghrib   *string   `db:"maghrib"    json:"maghrib"`
	Isha      *string   `db:"isha"       json:"isha"`
	Jummah    *string   `db:"jummah"     json:"jummah"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Daily flattens the nullable columns into the engine's input value.
func (p MosquePrayerTimes) Daily() prayer.DailyTimes {
	return prayer.DailyTimes{
		Fajr:    deref(p.Fajr),
		Dhuhr:   deref(p.Dhuhr),
		Asr:     deref(p.Asr),
		Maghrib: deref(p.Maghrib),
		Isha:    deref(p.Isha),
		Jummah:  deref(p.Jummah),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
