package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	Upsert(ctx context.Context, user *User) (*mongo.UpdateResult, error)
}
