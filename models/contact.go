package models

// ContactRequest is the contact/catering form payload. Website is a
// honeypot field: humans never see it, so a non-empty value marks a bot.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Website string `json:"website"`
}

// ContactResponse is the relay outcome reported to the caller.
type ContactResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
