package store

import (
	"context"
	"log"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const usersCollection = "users"

type UserMongoDBStore struct {
	users  *mongo.Collection
	tracer trace.Tracer
}

func NewUserMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.UserStore {
	users := client.Database(DATABASE).Collection(usersCollection)
	return &UserMongoDBStore{
		users:  users,
		tracer: tracer,
	}
}

func (store *UserMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserMongoDBStore.GetByEmail")
	defer span.End()

	filter := bson.M{"email": email}
	return store.filterOne(ctx, filter)
}

func (store *UserMongoDBStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := store.tracer.Start(ctx, "UserMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

// Upsert writes the profile only when no document matches the email,
// so a concurrent duplicate create collapses to a single document.
func (store *UserMongoDBStore) Upsert(ctx context.Context, user *domain.User) (*mongo.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "UserMongoDBStore.Upsert")
	defer span.End()

	filter := bson.M{"email": user.Email}
	update := bson.M{"$setOnInsert": user}
	opts := options.Update().SetUpsert(true)

	result, err := store.users.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (store *UserMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.User, error) {
	cursor, err := store.users.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeUsers(ctx, cursor)
}

func (store *UserMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.User, error) {
	result := store.users.FindOne(ctx, filter)

	var user domain.User
	if err := result.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding user:", err)
		return nil, err
	}

	return &user, nil
}

func decodeUsers(ctx context.Context, cursor *mongo.Cursor) (users []*domain.User, err error) {
	for cursor.Next(ctx) {
		var user domain.User
		err = cursor.Decode(&user)
		if err != nil {
			return
		}
		users = append(users, &user)
	}
	err = cursor.Err()
	return
}
