package application

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type BookingService struct {
	store  domain.BookingStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewBookingService(store domain.BookingStore, tracer trace.Tracer, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *BookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	created, err := service.store.Insert(ctx, booking)
	if err != nil {
		service.logger.Errorf("error saving booking: %s", err)
		return nil, err
	}
	return created, nil
}

func (service *BookingService) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *BookingService) GetOneForGuest(ctx context.Context, email string) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetOneForGuest")
	defer span.End()

	return service.store.GetOneByGuestEmail(ctx, email)
}

func (service *BookingService) GetForGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetForGuest")
	defer span.End()

	return service.store.GetByGuestEmail(ctx, email)
}

func (service *BookingService) GetForHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetForHost")
	defer span.End()

	return service.store.GetByHostEmail(ctx, email)
}
