package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chaibisket/models"
	"chaibisket/pkg/envconfig"
)

func contactSubmission() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Arjun",
		Email:   "arjun@example.com",
		Phone:   "555-0199",
		Message: "Do you cater weddings?",
	}
}

func TestSendRelaysEmail(t *testing.T) {
	var gotAuth string
	var gotBody resendPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewContactService(envconfig.ContactConfig{
		ResendAPIKey: "re_test_key",
		ResendURL:    server.URL,
		To:           "owner@example.com",
		CC:           "backup@example.com",
		From:         "site@example.com",
		Subject:      "New contact form submission",
	}, server.Client(), testLogger())

	require.NoError(t, svc.Send(context.Background(), contactSubmission()))

	require.Equal(t, "Bearer re_test_key", gotAuth)
	require.Equal(t, "site@example.com", gotBody.From)
	require.Equal(t, []string{"owner@example.com"}, gotBody.To)
	require.Equal(t, []string{"backup@example.com"}, gotBody.CC)
	require.Equal(t, "arjun@example.com", gotBody.ReplyTo)
	require.Contains(t, gotBody.Text, "Do you cater weddings?")
}

func TestSendHoneypotDropsSilently(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewContactService(envconfig.ContactConfig{
		ResendAPIKey: "re_test_key",
		ResendURL:    server.URL,
	}, server.Client(), testLogger())

	req := contactSubmission()
	req.Website = "http://spam.example.com"

	require.NoError(t, svc.Send(context.Background(), req))
	require.False(t, called, "honeypot submissions must not reach the provider")
}

func TestSendRejectsMissingFields(t *testing.T) {
	svc := NewContactService(envconfig.ContactConfig{}, nil, testLogger())

	for _, req := range []models.ContactRequest{
		{Email: "a@example.com", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@example.com"},
	} {
		err := svc.Send(context.Background(), req)
		require.ErrorIs(t, err, ErrMissingContactFields)
	}
}

func TestSendWithoutAPIKeySucceeds(t *testing.T) {
	svc := NewContactService(envconfig.ContactConfig{}, nil, testLogger())

	require.NoError(t, svc.Send(context.Background(), contactSubmission()))
}

func TestSendSurfacesProviderErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := NewContactService(envconfig.ContactConfig{
		ResendAPIKey: "re_test_key",
		ResendURL:    server.URL,
	}, server.Client(), testLogger())

	require.Error(t, svc.Send(context.Background(), contactSubmission()))
}

func TestSendPostsWebhookCopy(t *testing.T) {
	received := make(chan webhookPayload, 1)
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload webhookPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
	}))
	defer webhook.Close()

	svc := NewContactService(envconfig.ContactConfig{
		WebhookURL: webhook.URL,
	}, webhook.Client(), testLogger())

	require.NoError(t, svc.Send(context.Background(), contactSubmission()))

	select {
	case payload := <-received:
		require.Equal(t, "Arjun", payload.Name)
		require.Equal(t, "arjun@example.com", payload.Email)
		require.NotEmpty(t, payload.Timestamp)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never called")
	}
}
