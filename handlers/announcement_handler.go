package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"go.opentelemetry.io/otel/trace"
)

type AnnouncementHandler struct {
	service *application.AnnouncementService
	tracer  trace.Tracer
}

func NewAnnouncementHandler(service *application.AnnouncementService, tracer trace.Tracer) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *AnnouncementHandler) Create(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AnnouncementHandler.Create")
	defer span.End()

	var announcement domain.Announcement
	err := json.NewDecoder(req.Body).Decode(&announcement)
	if err != nil {
		http.Error(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	announcement.CreatedAt = time.Now()

	created, err := handler.service.Create(ctx, &announcement)
	if err != nil {
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	jsonResponse(created, writer)
}

func (handler *AnnouncementHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AnnouncementHandler.GetAll")
	defer span.End()

	announcements, err := handler.service.GetAll(ctx)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if announcements == nil {
		announcements = []*domain.Announcement{}
	}
	jsonResponse(announcements, writer)
}
