package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"hualien-aid/internal/repository"
)

// EnsureLocationIndexes backs the newest-first listing and category filter.
func EnsureLocationIndexes(db *mongo.Database) error {
	_, err := db.Collection(repository.LocationsCollection).Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category"),
			},
		},
	)
	return err
}

func EnsureChannelIndexes(db *mongo.Database) error {
	_, err := db.Collection(repository.ChannelsCollection).Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("type_status"),
			},
		},
	)
	return err
}
