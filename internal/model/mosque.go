package model

import "time"

// Mosque is a directory entry. Only approved mosques show up in public
// discovery; unapproved rows exist while a registration is under review.
type Mosque struct {
	ID        int       `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Address   string    `db:"address"    json:"address"`
	City      string    `db:"city"       json:"city"`
	Contact   *string   `db:"contact"    json:"contact"`
	Approved  bool      `db:"approved"   json:"approved"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// RegistrationRequest tracks a submitted mosque registration through review.
// Reference is an opaque code handed back to the submitter for status lookup.
type RegistrationRequest struct {
	ID             int       `db:"id"              json:"id"`
	Reference      string    `db:"reference"       json:"reference"`
	MosqueName     string    `db:"mosque_name"     json:"mosque_name"`
	Address        string    `db:"address"         json:"address"`
	City           string    `db:"city"            json:"city"`
	Contact        *string   `db:"contact"         json:"contact"`
	SubmitterEmail string    `db:"submitter_email" json:"submitter_email"`
	Status         string    `db:"status"          json:"status"`
	Note           *string   `db:"note"            json:"note"`
	ReviewedBy     *int      `db:"reviewed_by"     json:"reviewed_by"`
	MosqueID       *int      `db:"mosque_id"       json:"mosque_id"`
	CreatedAt      time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"      json:"updated_at"`
}
