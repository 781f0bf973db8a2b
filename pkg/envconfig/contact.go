package envconfig

// ContactConfig holds settings for the contact-form relay.
type ContactConfig struct {
	ResendAPIKey string
	ResendURL    string
	To           string
	CC           string
	From         string
	Subject      string
	WebhookURL   string
}

// LoadContactConfig loads the contact relay settings from environment
// variables. Without an API key the email leg is skipped and submissions
// are only logged, matching the behavior of an unconfigured deployment.
func LoadContactConfig() ContactConfig {
	return ContactConfig{
		ResendAPIKey: GetEnv("RESEND_API_KEY", ""),
		ResendURL:    GetEnv("RESEND_API_URL", "https://api.resend.com/emails"),
		To:           GetEnv("CONTACT_TO", "chaibisketllc@gmail.com"),
		CC:           GetEnv("CONTACT_CC", ""),
		From:         GetEnv("CONTACT_FROM", "Chai Bisket <onboarding@resend.dev>"),
		Subject:      GetEnv("CONTACT_SUBJECT", "New Catering / Contact Message from Chai Bisket"),
		WebhookURL:   GetEnv("SHEETS_WEBHOOK_URL", ""),
	}
}
