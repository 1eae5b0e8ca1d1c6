package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristalhq/jwt/v4"
	"go.opentelemetry.io/otel/trace"
)

// TokenLifetime mirrors the 365 day cookie expiry of the web client.
const TokenLifetime = 365 * 24 * time.Hour

type AuthService struct {
	secretKey []byte
	tracer    trace.Tracer
}

func NewAuthService(secret string, tracer trace.Tracer) *AuthService {
	return &AuthService{
		secretKey: []byte(secret),
		tracer:    tracer,
	}
}

// GenerateToken signs the caller supplied payload as-is. There is no check
// that the payload corresponds to a stored user record.
func (service *AuthService) GenerateToken(ctx context.Context, payload map[string]interface{}) (string, error) {
	_, span := service.tracer.Start(ctx, "AuthService.GenerateToken")
	defer span.End()

	signer, err := jwt.NewSignerHS(jwt.HS256, service.secretKey)
	if err != nil {
		return "", err
	}

	claims := make(map[string]interface{}, len(payload)+2)
	for key, value := range payload {
		claims[key] = value
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenLifetime).Unix()

	builder := jwt.NewBuilder(signer)
	token, err := builder.Build(claims)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

// VerifyToken checks signature and expiry only; there is no revocation list.
func (service *AuthService) VerifyToken(ctx context.Context, tokenString string) (map[string]interface{}, error) {
	_, span := service.tracer.Start(ctx, "AuthService.VerifyToken")
	defer span.End()

	verifier, err := jwt.NewVerifierHS(jwt.HS256, service.secretKey)
	if err != nil {
		return nil, err
	}

	var claims map[string]interface{}
	err = jwt.ParseClaims([]byte(tokenString), verifier, &claims)
	if err != nil {
		return nil, err
	}

	expiresAt, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("token has no expiry")
	}
	if time.Now().Unix() > int64(expiresAt) {
		return nil, fmt.Errorf("token has expired")
	}

	return claims, nil
}
