package application

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type AnnouncementService struct {
	store  domain.AnnouncementStore
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewAnnouncementService(store domain.AnnouncementStore, tracer trace.Tracer, logger *logrus.Logger) *AnnouncementService {
	return &AnnouncementService{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (service *AnnouncementService) Create(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	ctx, span := service.tracer.Start(ctx, "AnnouncementService.Create")
	defer span.End()

	created, err := service.store.Insert(ctx, announcement)
	if err != nil {
		service.logger.Errorf("error saving announcement: %s", err)
		return nil, err
	}
	return created, nil
}

func (service *AnnouncementService) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	ctx, span := service.tracer.Start(ctx, "AnnouncementService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}
