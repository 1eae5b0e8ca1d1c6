package store

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

const roomsCollection = "rooms"

// RoomMongoDBStore is read-only from the API surface, rooms are seeded out of band.
type RoomMongoDBStore struct {
	rooms  *mongo.Collection
	tracer trace.Tracer
}

func NewRoomMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.RoomStore {
	rooms := client.Database(DATABASE).Collection(roomsCollection)
	return &RoomMongoDBStore{
		rooms:  rooms,
		tracer: tracer,
	}
}

func (store *RoomMongoDBStore) GetAll(ctx context.Context) ([]*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *RoomMongoDBStore) GetByCategory(ctx context.Context, category string) ([]*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomMongoDBStore.GetByCategory")
	defer span.End()

	filter := bson.M{"category": category}
	return store.filter(ctx, filter)
}

func (store *RoomMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	ctx, span := store.tracer.Start(ctx, "RoomMongoDBStore.Get")
	defer span.End()

	filter := bson.M{"_id": id}
	return store.filterOne(ctx, filter)
}

func (store *RoomMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Room, error) {
	cursor, err := store.rooms.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeRooms(ctx, cursor)
}

func (store *RoomMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.Room, error) {
	result := store.rooms.FindOne(ctx, filter)

	var room domain.Room
	if err := result.Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &room, nil
}

func decodeRooms(ctx context.Context, cursor *mongo.Cursor) (rooms []*domain.Room, err error) {
	for cursor.Next(ctx) {
		var room domain.Room
		err = cursor.Decode(&room)
		if err != nil {
			return
		}
		rooms = append(rooms, &room)
	}
	err = cursor.Err()
	return
}
