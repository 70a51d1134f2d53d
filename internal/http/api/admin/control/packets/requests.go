package packets

// REQUESTS FOR /api/admin/*

type CreateMosqueRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	City    string  `json:"city" binding:"required"`
	Contact *string `json:"contact"`
}

type UpdateMosqueRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	City    string  `json:"city" binding:"required"`
	Contact *string `json:"contact"`
}

// UpsertPrayerTimesRequest carries one day's raw time strings. Fields may be
// 24-hour ("05:15") or 12-hour ("5:15 PM"); omitted fields clear the slot.
type UpsertPrayerTimesRequest struct {
	Day     string  `json:"day" binding:"required"` // YYYY-MM-DD
	Fajr    *string `json:"fajr"`
	Dhuhr   *string `json:"dhuhr"`
	Asr     *string `json:"asr"`
	Maghrib *string `json:"maghrib"`
	Isha    *string `json:"isha"`
	Jummah  *string `json:"jummah"`
}

type ReviewRegistrationRequest struct {
	Action string  `json:"action" binding:"required,oneof=approve reject"`
	Note   *string `json:"note"`
}
