package handlers

import (
	"net/http"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
)

type RoomHandler struct {
	service *application.RoomService
	tracer  trace.Tracer
}

func NewRoomHandler(service *application.RoomService, tracer trace.Tracer) *RoomHandler {
	return &RoomHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *RoomHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.GetAll")
	defer span.End()

	category := req.URL.Query().Get("category")

	rooms, err := handler.service.GetAll(ctx, category)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	jsonResponse(rooms, writer)
}

func (handler *RoomHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "RoomHandler.Get")
	defer span.End()

	vars := mux.Vars(req)
	id, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(writer, errors.InvalidRoomIDError, http.StatusBadRequest)
		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	jsonResponse(room, writer)
}
