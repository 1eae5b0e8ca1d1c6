package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/trace"
)

const defaultPaymentEndpoint = "https://api.stripe.com/v1/payment_intents"

// PaymentService creates charge intents against the third-party payment
// provider. The provider is an external collaborator, so calls go through a
// circuit breaker and fail fast while the provider is down.
type PaymentService struct {
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
	secretKey string
	endpoint  string
	tracer    trace.Tracer
	logger    *logrus.Logger
}

func NewPaymentService(secretKey, endpoint string, tracer trace.Tracer, logger *logrus.Logger) *PaymentService {
	if endpoint == "" {
		endpoint = defaultPaymentEndpoint
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payment-provider",
		Timeout: 10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &PaymentService{
		client:    &http.Client{Timeout: 15 * time.Second},
		breaker:   breaker,
		secretKey: secretKey,
		endpoint:  endpoint,
		tracer:    tracer,
		logger:    logger,
	}
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent creates a charge intent sized from the booking rent amount and
// returns the opaque client secret the browser completes the payment with.
func (service *PaymentService) CreateIntent(ctx context.Context, rent float64) (string, error) {
	ctx, span := service.tracer.Start(ctx, "PaymentService.CreateIntent")
	defer span.End()

	// Provider expects the amount in the minor currency unit.
	amount := int64(math.Round(rent * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	result, err := service.breaker.Execute(func() (interface{}, error) {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, service.endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		request.Header.Set("Authorization", "Bearer "+service.secretKey)

		response, err := service.client.Do(request)
		if err != nil {
			return nil, err
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(response.Body)
			service.logger.Errorf("payment provider returned %d: %s", response.StatusCode, body)
			return nil, fmt.Errorf("payment provider returned %d", response.StatusCode)
		}

		var intent paymentIntent
		if err := json.NewDecoder(response.Body).Decode(&intent); err != nil {
			return nil, err
		}
		if intent.ClientSecret == "" {
			return nil, fmt.Errorf("payment provider returned no client secret")
		}
		return intent.ClientSecret, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
