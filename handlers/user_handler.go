package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
	"go.opentelemetry.io/otel/trace"
)

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

type UserHandler struct {
	service *application.UserService
	tracer  trace.Tracer
}

func NewUserHandler(service *application.UserService, tracer trace.Tracer) *UserHandler {
	return &UserHandler{
		service: service,
		tracer:  tracer,
	}
}

func (handler *UserHandler) Get(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Get")
	defer span.End()

	vars := mux.Vars(req)
	email := vars["email"]

	user, err := handler.service.Get(ctx, email)
	if err != nil {
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}

	// Absent user serializes as null, the client treats that as "no profile yet".
	jsonResponse(user, writer)
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	jsonResponse(users, writer)
}

// SaveProfile creates the profile on first save. A save for an email that
// already has a record returns the stored record unchanged, whatever the
// submitted body says.
func (handler *UserHandler) SaveProfile(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.SaveProfile")
	defer span.End()

	vars := mux.Vars(req)
	email := vars["email"]
	if !emailRegex.MatchString(email) {
		http.Error(writer, errors.InvalidEmailFormat, http.StatusBadRequest)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		http.Error(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	// Identity and bookkeeping fields come from the route and the server.
	for key := range payload {
		switch key {
		case "_id", "email", "timestamp":
			delete(payload, key)
		}
	}

	var profile domain.User
	if err := mapstructure.Decode(payload, &profile); err != nil {
		http.Error(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}
	profile.Email = email

	if err := profile.Validate(); err != nil {
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	existing, result, err := handler.service.SaveProfile(ctx, email, &profile)
	if err != nil {
		http.Error(writer, errors.DatabaseError, http.StatusInternalServerError)
		return
	}
	if existing != nil {
		jsonResponse(existing, writer)
		return
	}

	jsonResponse(result, writer)
}
