package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/payments"
)

const testWebhookSecret = "whsec_test_secret"

type stubPaymentStore struct {
	appointment *models.Appointment
	err         error
	called      bool
	lastID      int64
}

func (s *stubPaymentStore) MarkPaid(_ context.Context, appointmentID int64) (*models.Appointment, error) {
	s.called = true
	s.lastID = appointmentID
	return s.appointment, s.err
}

type stubConfirmer struct {
	err    error
	called bool
	lastID int64
}

func (s *stubConfirmer) SendBookingConfirmation(_ context.Context, appointmentID int64) error {
	s.called = true
	s.lastID = appointmentID
	return s.err
}

func newWebhookApp(t *testing.T, handler *WebhookHandler) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/api/webhooks/stripe", handler.HandleStripeWebhook)
	return app
}

func completedCheckoutPayload(metadata map[string]string) []byte {
	event := map[string]any{
		"id":          "evt_test_1",
		"api_version": stripe.APIVersion,
		"type":        "checkout.session.completed",
		"data": map[string]any{
			"object": map[string]any{
				"id":       "cs_test_1",
				"metadata": metadata,
			},
		},
	}
	payload, _ := json.Marshal(event)
	return payload
}

func signPayload(payload []byte) string {
	timestamp := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func paidAppointment(id int64) *models.Appointment {
	return &models.Appointment{
		ID:            id,
		Status:        models.AppointmentScheduled,
		PaymentStatus: models.PaymentPaid,
	}
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{}
	handler := NewWebhookHandler(gateway, store, nil, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if store.called {
		t.Fatal("no database write may happen for an unverified event")
	}
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{}
	handler := NewWebhookHandler(gateway, store, nil, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("stripe-signature", "t=12345,v1=deadbeef")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if store.called {
		t.Fatal("no database write may happen for a bad signature")
	}
}

func TestWebhookMarksAppointmentPaidAndConfirms(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{appointment: paidAppointment(7)}
	confirmer := &stubConfirmer{}
	handler := NewWebhookHandler(gateway, store, confirmer, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("stripe-signature", signPayload(payload))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body["received"] {
		t.Fatal("expected received acknowledgment")
	}
	if !store.called || store.lastID != 7 {
		t.Fatalf("expected appointment 7 marked paid, called=%v id=%d", store.called, store.lastID)
	}
	if !confirmer.called || confirmer.lastID != 7 {
		t.Fatalf("expected confirmation for appointment 7, called=%v id=%d", confirmer.called, confirmer.lastID)
	}
}

func TestWebhookIgnoresCompletedCheckoutWithoutAppointmentID(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{}
	handler := NewWebhookHandler(gateway, store, nil, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("stripe-signature", signPayload(payload))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.called {
		t.Fatal("no database write may happen without appointment metadata")
	}
}

func TestWebhookConfirmationFailureStillAcknowledges(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{appointment: paidAppointment(7)}
	confirmer := &stubConfirmer{err: errors.New("edge function timeout")}
	handler := NewWebhookHandler(gateway, store, confirmer, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("stripe-signature", signPayload(payload))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 despite confirmation failure, got %d", resp.StatusCode)
	}
}

func TestWebhookMockBypassWorksInDevelopment(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{appointment: paidAppointment(7)}
	handler := NewWebhookHandler(gateway, store, nil, true)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set(mockWebhookHeader, "true")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !store.called || store.lastID != 7 {
		t.Fatalf("expected appointment 7 marked paid via bypass, called=%v id=%d", store.called, store.lastID)
	}
}

func TestWebhookMockBypassUnreachableOutsideDevelopment(t *testing.T) {
	gateway, err := payments.NewStripeGateway("sk_test_key", testWebhookSecret)
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}
	store := &stubPaymentStore{}
	handler := NewWebhookHandler(gateway, store, nil, false)
	app := newWebhookApp(t, handler)

	payload := completedCheckoutPayload(map[string]string{"appointmentId": "7"})
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set(mockWebhookHeader, "true")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 outside development, got %d", resp.StatusCode)
	}
	if store.called {
		t.Fatal("bypass must not apply updates outside development")
	}
}
