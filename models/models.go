package models

// ContactSubmission is a contact form record as posted by the site.
// Website is the honeypot field; legitimate users never fill it.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Website string `json:"website,omitempty"`
}

// ContactForward is the sanitized payload forwarded to the contact webhook.
type ContactForward struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
