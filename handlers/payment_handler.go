package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"go.opentelemetry.io/otel/trace"
)

type PaymentHandler struct {
	service *application.PaymentService
	tracer  trace.Tracer
}

func NewPaymentHandler(service *application.PaymentService, tracer trace.Tracer) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		tracer:  tracer,
	}
}

type PaymentRequest struct {
	Rent float64 `json:"rent"`
}

type PaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (handler *PaymentHandler) CreateIntent(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PaymentHandler.CreateIntent")
	defer span.End()

	var request PaymentRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		http.Error(writer, errors.InvalidPaymentData, http.StatusBadRequest)
		return
	}
	if request.Rent <= 0 {
		http.Error(writer, errors.InvalidPaymentData, http.StatusBadRequest)
		return
	}

	clientSecret, err := handler.service.CreateIntent(ctx, request.Rent)
	if err != nil {
		http.Error(writer, errors.PaymentIntentError, http.StatusInternalServerError)
		return
	}

	jsonResponse(PaymentResponse{ClientSecret: clientSecret}, writer)
}
