package mongodb

import (
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildCheckpointFilter selects documents strictly after the checkpoint in (updatedAt, _id) order
func BuildCheckpointFilter(updatedAtField string, checkpoint *types.Checkpoint) bson.D {
	if checkpoint == nil {
		return bson.D{}
	}
	after := primitive.NewDateTimeFromTime(checkpoint.UpdatedAt)
	newer := bson.D{{Key: updatedAtField, Value: bson.D{{Key: "$gt", Value: after}}}}
	if checkpoint.ID == "" {
		return newer
	}
	sameTimeHigherID := bson.D{
		{Key: updatedAtField, Value: after},
		{Key: types.IDField, Value: bson.D{{Key: "$gt", Value: sourceID(checkpoint.ID)}}},
	}
	return bson.D{{Key: "$or", Value: bson.A{newer, sameTimeHigherID}}}
}

// BuildSort returns the newest first order used to page through a collection
func BuildSort(updatedAtField string) bson.D {
	return bson.D{
		{Key: updatedAtField, Value: -1},
		{Key: types.IDField, Value: -1},
	}
}

func sourceID(id string) interface{} {
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		return objectID
	}
	return id
}
