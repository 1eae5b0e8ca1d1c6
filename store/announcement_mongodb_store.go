package store

import (
	"context"

	"github.com/Rezuan-Alam-Rean/building-management-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
)

// Collection name is singular in the deployed database.
const announcementCollection = "announcement"

type AnnouncementMongoDBStore struct {
	announcements *mongo.Collection
	tracer        trace.Tracer
}

func NewAnnouncementMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.AnnouncementStore {
	announcements := client.Database(DATABASE).Collection(announcementCollection)
	return &AnnouncementMongoDBStore{
		announcements: announcements,
		tracer:        tracer,
	}
}

func (store *AnnouncementMongoDBStore) Insert(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	ctx, span := store.tracer.Start(ctx, "AnnouncementMongoDBStore.Insert")
	defer span.End()

	announcement.ID = primitive.NewObjectID()
	result, err := store.announcements.InsertOne(ctx, announcement)
	if err != nil {
		return nil, err
	}
	announcement.ID = result.InsertedID.(primitive.ObjectID)
	return announcement, nil
}

func (store *AnnouncementMongoDBStore) GetAll(ctx context.Context) ([]*domain.Announcement, error) {
	ctx, span := store.tracer.Start(ctx, "AnnouncementMongoDBStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *AnnouncementMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Announcement, error) {
	cursor, err := store.announcements.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeAnnouncements(ctx, cursor)
}

func decodeAnnouncements(ctx context.Context, cursor *mongo.Cursor) (announcements []*domain.Announcement, err error) {
	for cursor.Next(ctx) {
		var announcement domain.Announcement
		err = cursor.Decode(&announcement)
		if err != nil {
			return
		}
		announcements = append(announcements, &announcement)
	}
	err = cursor.Err()
	return
}
