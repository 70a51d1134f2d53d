package packets

// RESPONSES FOR /api/admin/*

// MosqueResponse mirrors model.Mosque but flattens times to RFC3339.
type MosqueResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Contact   *string `json:"contact"`
	Approved  bool    `json:"approved"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type PrayerTimesResponse struct {
	ID       int     `json:"id"`
	MosqueID int     `json:"mosque_id"`
	Day      string  `json:"day"`
	Fajr     *string `json:"fajr"`
	Dhuhr    *string `json:"dhuhr"`
	Asr      *string `json:"asr"`
	Maghrib  *string `json:"maghrib"`
	Isha     *string `json:"isha"`
	Jummah   *string `json:"jummah"`
}

type RegistrationResponse struct {
	ID             int     `json:"id"`
	Reference      string  `json:"reference"`
	MosqueName     string  `json:"mosque_name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Contact        *string `json:"contact"`
	SubmitterEmail string  `json:"submitter_email"`
	Status         string  `json:"status"`
	Note           *string `json:"note"`
	MosqueID       *int    `json:"mosque_id"`
	CreatedAt      string  `json:"created_at"`
}
