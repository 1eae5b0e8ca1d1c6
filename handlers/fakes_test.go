package handlers

import (
	"context"
	"io"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("test")
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type inMemoryUserStore struct {
	users map[string]*domain.User
	err   error
}

func newInMemoryUserStore() *inMemoryUserStore {
	return &inMemoryUserStore{users: map[string]*domain.User{}}
}

func (store *inMemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if store.err != nil {
		return nil, store.err
	}
	return store.users[email], nil
}

func (store *inMemoryUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	if store.err != nil {
		return nil, store.err
	}
	var users []*domain.User
	for _, user := range store.users {
		users = append(users, user)
	}
	return users, nil
}

func (store *inMemoryUserStore) Upsert(ctx context.Context, user *domain.User) (*mongo.UpdateResult, error) {
	if store.err != nil {
		return nil, store.err
	}
	if _, exists := store.users[user.Email]; exists {
		return &mongo.UpdateResult{MatchedCount: 1}, nil
	}
	user.ID = primitive.NewObjectID()
	store.users[user.Email] = user
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: user.ID}, nil
}

type inMemoryRoomStore struct {
	rooms []*domain.Room
	err   error
}

func (store *inMemoryRoomStore) GetAll(ctx context.Context) ([]*domain.Room, error) {
	if store.err != nil {
		return nil, store.err
	}
	return store.rooms, nil
}

func (store *inMemoryRoomStore) GetByCategory(ctx context.Context, category string) ([]*domain.Room, error) {
	if store.err != nil {
		return nil, store.err
	}
	var rooms []*domain.Room
	for _, room := range store.rooms {
		if room.Category == category {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

func (store *inMemoryRoomStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	if store.err != nil {
		return nil, store.err
	}
	for _, room := range store.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

type inMemoryBookingStore struct {
	bookings []*domain.Booking
	err      error
}

func (store *inMemoryBookingStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if store.err != nil {
		return nil, store.err
	}
	booking.ID = primitive.NewObjectID()
	store.bookings = append(store.bookings, booking)
	return booking, nil
}

func (store *inMemoryBookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	if store.err != nil {
		return nil, store.err
	}
	return store.bookings, nil
}

func (store *inMemoryBookingStore) GetOneByGuestEmail(ctx context.Context, email string) (*domain.Booking, error) {
	if store.err != nil {
		return nil, store.err
	}
	for _, booking := range store.bookings {
		if booking.Guest.Email == email {
			return booking, nil
		}
	}
	return nil, nil
}

func (store *inMemoryBookingStore) GetByGuestEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	if store.err != nil {
		return nil, store.err
	}
	var bookings []*domain.Booking
	for _, booking := range store.bookings {
		if booking.Guest.Email == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (store *inMemoryBookingStore) GetByHostEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	if store.err != nil {
		return nil, store.err
	}
	var bookings []*domain.Booking
	for _, booking := range store.bookings {
		if booking.Host == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

type inMemoryAnnouncementStore struct {
	announcements []*domain.Announcement
	err           error
}

func (store *inMemoryAnnouncementStore) Insert(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	if store.err != nil {
		return nil, store.err
	}
	announcement.ID = primitive.NewObjectID()
	store.announcements = append(store.announcements, announcement)
	return announcement, nil
}

func (store *inMemoryAnnouncementStore) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	if store.err != nil {
		return nil, store.err
	}
	return store.announcements, nil
}
