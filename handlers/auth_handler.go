package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rezuan-Alam-Rean/building-management-server/errors"
	application "github.com/Rezuan-Alam-Rean/building-management-server/service"
	"go.opentelemetry.io/otel/trace"
)

// TokenCookieName is the session cookie the middleware reads.
const TokenCookieName = "token"

// ClaimsContextKey keys the decoded session claims on the request context.
type ClaimsContextKey struct{}

type AuthHandler struct {
	service     *application.AuthService
	environment string
	enforce     bool
	tracer      trace.Tracer
}

func NewAuthHandler(service *application.AuthService, environment string, enforce bool, tracer trace.Tracer) *AuthHandler {
	return &AuthHandler{
		service:     service,
		environment: environment,
		enforce:     enforce,
		tracer:      tracer,
	}
}

// CreateToken signs whatever payload the caller sends and sets it as the
// session cookie. The payload is not checked against stored user records.
func (handler *AuthHandler) CreateToken(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "AuthHandler.CreateToken")
	defer span.End()

	var payload map[string]interface{}
	err := json.NewDecoder(req.Body).Decode(&payload)
	if err != nil {
		http.Error(writer, errors.InvalidRequestFormat, http.StatusBadRequest)
		return
	}

	token, err := handler.service.GenerateToken(ctx, payload)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(writer, handler.sessionCookie(token, int(application.TokenLifetime.Seconds())))
	jsonResponse(SuccessResponse{Success: true}, writer)
}

// Logout clears the session cookie. Tokens are stateless, so nothing is
// invalidated server-side.
func (handler *AuthHandler) Logout(writer http.ResponseWriter, req *http.Request) {
	_, span := handler.tracer.Start(req.Context(), "AuthHandler.Logout")
	defer span.End()

	http.SetCookie(writer, handler.sessionCookie("", -1))
	jsonResponse(SuccessResponse{Success: true}, writer)
}

func (handler *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	secure := handler.environment == "production"
	sameSite := http.SameSiteStrictMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     TokenCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// MiddlewareVerifyToken rejects requests without a valid session cookie.
// When enforcement is off every guarded route stays open.
func (handler *AuthHandler) MiddlewareVerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		if !handler.enforce {
			next.ServeHTTP(writer, req)
			return
		}

		cookie, err := req.Cookie(TokenCookieName)
		if err != nil {
			writer.WriteHeader(http.StatusUnauthorized)
			jsonResponse(MessageResponse{Message: errors.UnauthorizedAccess}, writer)
			return
		}

		claims, err := handler.service.VerifyToken(req.Context(), cookie.Value)
		if err != nil {
			writer.WriteHeader(http.StatusUnauthorized)
			jsonResponse(MessageResponse{Message: errors.UnauthorizedAccess}, writer)
			return
		}

		ctx := context.WithValue(req.Context(), ClaimsContextKey{}, claims)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}
