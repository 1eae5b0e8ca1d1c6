package store

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

const bookingsCollection = "bookings"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(bookingsCollection)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
	}
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Insert")
	defer span.End()

	booking.ID = primitive.NewObjectID()
	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetOneByGuestEmail(ctx context.Context, email string) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetOneByGuestEmail")
	defer span.End()

	filter := bson.M{"guest.email": email}
	return store.filterOne(ctx, filter)
}

func (store *BookingMongoDBStore) GetByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetByGuestEmail")
	defer span.End()

	filter := bson.M{"guest.email": email}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetByHostEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetByHostEmail")
	defer span.End()

	filter := bson.M{"host": email}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeBookings(ctx, cursor)
}

func (store *BookingMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.Booking, error) {
	result := store.bookings.FindOne(ctx, filter)

	var booking domain.Booking
	if err := result.Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) (bookings []*domain.Booking, err error) {
	for cursor.Next(ctx) {
		var booking domain.Booking
		err = cursor.Decode(&booking)
		if err != nil {
			return
		}
		bookings = append(bookings, &booking)
	}
	err = cursor.Err()
	return
}
