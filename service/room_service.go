package application

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
)

type RoomService struct {
	store  domain.RoomStore
	tracer trace.Tracer
}

func NewRoomService(store domain.RoomStore, tracer trace.Tracer) *RoomService {
	return &RoomService{
		store:  store,
		tracer: tracer,
	}
}

// GetAll lists rooms, optionally filtered by category. The web client sends
// the literal string "null" when no category is selected; both that and an
// empty value mean no filter.
func (service *RoomService) GetAll(ctx context.Context, category string) ([]*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.GetAll")
	defer span.End()

	if category == "" || category == "null" {
		return service.store.GetAll(ctx)
	}
	return service.store.GetByCategory(ctx, category)
}

func (service *RoomService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Get")
	defer span.End()

	return service.store.Get(ctx, id)
}
