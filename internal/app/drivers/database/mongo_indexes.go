package database

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionIndexes pairs a collection with the indexes it must carry.
type CollectionIndexes struct {
	Collection string
	Models     []mongo.IndexModel
}

func IndexPlan(store config.Store) []CollectionIndexes {
	return []CollectionIndexes{
		{
			Collection: store.DoctorCollectionID,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "createdAt", Value: -1}}},
				{Keys: bson.D{{Key: "name", Value: 1}}},
			},
		},
		{
			Collection: store.AppointmentCollectionID,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "createdAt", Value: -1}}},
				{Keys: bson.D{{Key: "status", Value: 1}}},
				{Keys: bson.D{{Key: "userId", Value: 1}}},
			},
		},
		{
			Collection: store.UserCollectionID,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			Collection: store.PatientCollectionID,
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
	}
}

// EnsureIndexes creates every planned index and returns the created index names per collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database, plan []CollectionIndexes) (map[string][]string, error) {
	created := make(map[string][]string, len(plan))
	for _, item := range plan {
		names, err := db.Collection(item.Collection).Indexes().CreateMany(ctx, item.Models)
		if err != nil {
			return created, exceptions.ErrMongoDBCreateIndexes(err, item.Collection)
		}
		created[item.Collection] = names
	}
	return created, nil
}
