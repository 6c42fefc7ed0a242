package models

// VerificationEmail is the message queued for the mail worker.
type VerificationEmail struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Link     string `json:"link"`
}
