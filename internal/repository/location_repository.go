package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"hualien-aid/internal/feed"
	"hualien-aid/internal/models"
)

type LocationRepository struct {
	Col  *mongo.Collection
	Feed feed.Publisher
}

func NewLocationRepository(db *mongo.Database, pub feed.Publisher) *LocationRepository {
	return &LocationRepository{Col: db.Collection(LocationsCollection), Feed: pub}
}

// FindAll returns every marker, newest first.
func (r *LocationRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	return findAllNewestFirst[models.Location](ctx, r.Col)
}

func (r *LocationRepository) Insert(ctx context.Context, draft models.LocationDraft) (*models.Location, error) {
	doc := draft.Document(now())
	res, err := r.Col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)

	announce(ctx, r.Feed, LocationsCollection)
	return &doc, nil
}

func (r *LocationRepository) Update(ctx context.Context, id string, patch models.LocationPatch) (*models.Location, error) {
	set := patch.Set()
	set["updated_at"] = now()

	out, err := updateByID[models.Location](ctx, r.Col, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	announce(ctx, r.Feed, LocationsCollection)
	return out, nil
}

// AppendMessage pushes onto the thread server side, so two people posting at
// once both land.
func (r *LocationRepository) AppendMessage(ctx context.Context, id string, msg models.Message) (*models.Location, error) {
	update := bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  bson.M{"updated_at": now()},
	}
	out, err := updateByID[models.Location](ctx, r.Col, id, update)
	if err != nil {
		return nil, err
	}
	announce(ctx, r.Feed, LocationsCollection)
	return out, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.Col, id); err != nil {
		return err
	}
	announce(ctx, r.Feed, LocationsCollection)
	return nil
}
