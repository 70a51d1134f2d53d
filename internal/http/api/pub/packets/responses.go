package packets

// RESPONSES FOR /api/public/*

type MosqueResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Contact *string `json:"contact"`
}

// MosqueListResponse is one page of discovery results.
type MosqueListResponse struct {
	Mosques  []MosqueResponse `json:"mosques"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// PrayerTimesResponse carries both the raw configured strings and their
// 12-hour display forms.
type PrayerTimesResponse struct {
	MosqueID int               `json:"mosque_id"`
	Day      string            `json:"day"`
	Times    map[string]string `json:"times"`
	Display  map[string]string `json:"display"`
}

// NextPrayerResponse is the countdown payload. Available=false means no
// parseable prayer time exists for the day; the other fields are then empty.
type NextPrayerResponse struct {
	Available        bool   `json:"available"`
	Name             string `json:"name,omitempty"`
	Time             string `json:"time,omitempty"`
	TimeDisplay      string `json:"time_display,omitempty"`
	SecondsRemaining int    `json:"seconds_remaining"`
	Countdown        string `json:"countdown,omitempty"`
	Urgent           bool   `json:"urgent"`
}

type RegistrationStatusResponse struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Note      *string `json:"note"`
	MosqueID  *int    `json:"mosque_id"`
}
