package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chaibisket/models"
	"chaibisket/pkg/envconfig"
	"chaibisket/pkg/logger"
)

// ErrMissingContactFields is the client error for an incomplete form.
var ErrMissingContactFields = errors.New("Missing required fields.")

// ContactServiceInterface relays contact-form submissions.
type ContactServiceInterface interface {
	Send(ctx context.Context, req models.ContactRequest) error
}

// ContactService forwards a submission to the Resend email API and, when
// configured, posts a fire-and-forget copy to a spreadsheet webhook.
// A filled honeypot field short-circuits to silent success.
type ContactService struct {
	config envconfig.ContactConfig
	client *http.Client
	logger *logger.Logger
}

// NewContactService creates a contact relay.
func NewContactService(config envconfig.ContactConfig, client *http.Client, log *logger.Logger) *ContactService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ContactService{
		config: config,
		client: client,
		logger: log.WithComponent("contact_service"),
	}
}

// resendPayload mirrors the Resend send-email request body.
type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to"`
	Text    string   `json:"text"`
}

// webhookPayload is the row appended to the spreadsheet webhook.
type webhookPayload struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Send validates and relays the submission.
func (s *ContactService) Send(ctx context.Context, req models.ContactRequest) error {
	// Bot trap: pretend everything went fine and send nothing.
	if req.Website != "" {
		s.logger.Debug("Honeypot tripped, dropping submission")
		return nil
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		s.logger.Warn("Contact submission rejected: missing fields")
		return ErrMissingContactFields
	}

	if s.config.ResendAPIKey != "" {
		if err := s.sendEmail(ctx, req); err != nil {
			s.logger.Error("Failed to relay contact email", "error", err)
			return err
		}
	} else {
		s.logger.Info("Email relay not configured, submission logged only",
			"name", req.Name, "email", req.Email)
	}

	if s.config.WebhookURL != "" {
		// Fire and forget; webhook failures never affect the caller.
		go s.postWebhook(req)
	}

	return nil
}

func (s *ContactService) sendEmail(ctx context.Context, req models.ContactRequest) error {
	text := fmt.Sprintf(`New message from the Chai Bisket site

Name: %s
Email: %s
Phone: %s

Message:
%s`, req.Name, req.Email, req.Phone, req.Message)

	payload := resendPayload{
		From:    s.config.From,
		To:      []string{s.config.To},
		Subject: s.config.Subject,
		ReplyTo: req.Email,
		Text:    text,
	}
	if s.config.CC != "" {
		payload.CC = []string{s.config.CC}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize email payload: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.ResendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.config.ResendAPIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("email request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	s.logger.Info("Contact email relayed", "reply_to", req.Email)
	return nil
}

func (s *ContactService) postWebhook(req models.ContactRequest) {
	payload := webhookPayload{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Debug("Failed to serialize webhook payload", "error", err)
		return
	}

	resp, err := s.client.Post(s.config.WebhookURL, "application/json", strings.NewReader(string(body)))
	if err != nil {
		s.logger.Debug("Spreadsheet webhook post failed", "error", err)
		return
	}
	resp.Body.Close()

	s.logger.Debug("Spreadsheet webhook posted", "status", resp.StatusCode)
}
