package packets

// ProfileResponse mirrors model.User but flattens times to RFC3339 and drops
// the password hash.
type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
