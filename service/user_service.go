package application

import (
	"context"
	"time"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

type UserService struct {
	store  domain.UserStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewUserService(store domain.UserStore, tracer trace.Tracer, logger *logrus.Logger) *UserService {
	return &UserService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.Get")
	defer span.End()

	return service.store.GetByEmail(ctx, email)
}

func (service *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

// SaveProfile creates the profile when no record exists for the email and
// returns the stored record unchanged otherwise. The submitted body is never
// merged into an existing record.
func (service *UserService) SaveProfile(ctx context.Context, email string, profile *domain.User) (*domain.User, *mongo.UpdateResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.SaveProfile")
	defer span.End()

	existing, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		service.logger.Infof("profile for %s already exists, returning stored record", email)
		return existing, nil, nil
	}

	profile.Email = email
	profile.Timestamp = time.Now().UnixMilli()

	result, err := service.store.Upsert(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	return nil, result, nil
}
