package application

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

func newTestPaymentService(endpoint string) *PaymentService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPaymentService("sk_test_secret", endpoint, trace.NewNoopTracerProvider().Tracer("test"), logger)
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_secret" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if amount := r.PostForm.Get("amount"); amount != "4999" {
			t.Errorf("expected amount in minor units, got %q", amount)
		}
		if currency := r.PostForm.Get("currency"); currency != "usd" {
			t.Errorf("unexpected currency %q", currency)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer provider.Close()

	service := newTestPaymentService(provider.URL)

	clientSecret, err := service.CreateIntent(context.Background(), 49.99)
	if err != nil {
		t.Fatal(err)
	}
	if clientSecret != "pi_123_secret_abc" {
		t.Errorf("unexpected client secret %q", clientSecret)
	}
}

func TestCreateIntentProviderErrorStatus(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer provider.Close()

	service := newTestPaymentService(provider.URL)

	if _, err := service.CreateIntent(context.Background(), 10); err == nil {
		t.Fatal("expected error on provider failure status")
	}
}

func TestCreateIntentMissingClientSecret(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer provider.Close()

	service := newTestPaymentService(provider.URL)

	if _, err := service.CreateIntent(context.Background(), 10); err == nil {
		t.Fatal("expected error when provider omits the client secret")
	}
}

func TestCreateIntentBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer provider.Close()

	service := newTestPaymentService(provider.URL)

	for i := 0; i < 10; i++ {
		if _, err := service.CreateIntent(context.Background(), 10); err == nil {
			t.Fatal("expected failure while provider is down")
		}
	}
	if calls >= 10 {
		t.Errorf("expected the breaker to stop calls to the provider, saw %d", calls)
	}
}
