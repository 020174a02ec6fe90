package payments

import (
	"errors"
	"testing"
)

func TestNewStripeGatewayRequiresSecretKey(t *testing.T) {
	if _, err := NewStripeGateway("", "whsec_test"); err == nil {
		t.Fatal("expected an error for a missing secret key")
	}
}

func TestVerifyEventRequiresSignatureHeader(t *testing.T) {
	gateway, err := NewStripeGateway("sk_test_key", "whsec_test")
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}

	if _, err := gateway.VerifyEvent([]byte(`{}`), ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestVerifyEventRequiresConfiguredSecret(t *testing.T) {
	gateway, err := NewStripeGateway("sk_test_key", "")
	if err != nil {
		t.Fatalf("NewStripeGateway: %v", err)
	}

	if _, err := gateway.VerifyEvent([]byte(`{}`), "t=1,v1=abc"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
