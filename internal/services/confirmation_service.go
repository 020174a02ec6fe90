package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type BookingConfirmer interface {
	SendBookingConfirmation(ctx context.Context, appointmentID int64) error
}

// SupabaseConfirmationService invokes the send-booking-confirmation edge
// function after a payment has been confirmed.
type SupabaseConfirmationService struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewSupabaseConfirmationService(baseURL, anonKey string) *SupabaseConfirmationService {
	return &SupabaseConfirmationService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: http.DefaultClient,
	}
}

func (s *SupabaseConfirmationService) SendBookingConfirmation(ctx context.Context, appointmentID int64) error {
	endpoint := fmt.Sprintf("%s/functions/v1/send-booking-confirmation", s.baseURL)

	payload := map[string]int64{"appointmentId": appointmentID}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal confirmation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build confirmation request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send booking confirmation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send booking confirmation: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return nil
}
