package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomStore interface {
	GetAll(ctx context.Context) ([]*Room, error)
	GetByCategory(ctx context.Context, category string) ([]*Room, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Room, error)
}
