package packets

// REQUESTS FOR /api/public/*

// SubmitRegistrationRequest is the public mosque registration form.
type SubmitRegistrationRequest struct {
	MosqueName     string  `json:"mosque_name" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	City           string  `json:"city" binding:"required"`
	Contact        *string `json:"contact"`
	SubmitterEmail string  `json:"submitter_email" binding:"required,email"`
}
