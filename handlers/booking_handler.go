package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"
)

type BookingHandler struct {
	service *application.BookingService
	tracer  trace.Tracer
}

func NewBookingHandler(service *application.BookingService, tracer trace.Tracer) *BookingHandler {
	return &BookingHandler{
		service: service,
		tracer:  tracer,
	}
}

type BookingResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *domain.Booking `json:"data,omitempty"`
}

// Create rejects only a completely absent body; an empty object is a valid
// booking by contract.
func (handler *BookingHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Create")
	defer span.End()

	body, err := io.ReadAll(req.Body)
	if err != nil || len(body) == 0 {
		writer.WriteHeader(http.StatusBadRequest)
		jsonResponse(BookingResponse{Success: false, Message: errors.InvalidBookingData}, writer)
		return
	}

	var booking domain.Booking
	if err := json.Unmarshal(body, &booking); err != nil {
		writer.WriteHeader(http.StatusBadRequest)
		jsonResponse(BookingResponse{Success: false, Message: errors.InvalidBookingData}, writer)
		return
	}

	created, err := handler.service.Create(ctx, &booking)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		jsonResponse(BookingResponse{Success: false, Message: errors.BookingSaveError}, writer)
		return
	}

	writer.WriteHeader(http.StatusCreated)
	jsonResponse(BookingResponse{Success: true, Data: created}, writer)
}

func (handler *BookingHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetAll")
	defer span.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}

// GetOneByGuest returns the first booking for the guest email, not a collection.
func (handler *BookingHandler) GetOneByGuest(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetOneByGuest")
	defer span.End()

	vars := mux.Vars(req)
	email := vars["email"]

	booking, err := handler.service.GetOneForGuest(ctx, email)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	jsonResponse(booking, writer)
}

func (handler *BookingHandler) GetByGuest(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByGuest")
	defer span.End()

	email := req.URL.Query().Get("email")
	if email == "" {
		jsonResponse([]*domain.Booking{}, writer)
		return
	}

	bookings, err := handler.service.GetForGuest(ctx, email)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) GetByHost(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByHost")
	defer span.End()

	email := req.URL.Query().Get("email")
	if email == "" {
		jsonResponse([]*domain.Booking{}, writer)
		return
	}

	bookings, err := handler.service.GetForHost(ctx, email)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	jsonResponse(bookings, writer)
}
