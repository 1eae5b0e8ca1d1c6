package store

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DATABASE = "building-management"

func GetClient(uri string, httpClient *http.Client) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	optionsClient := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI).SetHTTPClient(httpClient)
	return mongo.Connect(context.TODO(), optionsClient)
}

func Ping(client *mongo.Client) error {
	return client.Database("admin").RunCommand(context.TODO(), bson.D{{Key: "ping", Value: 1}}).Err()
}
