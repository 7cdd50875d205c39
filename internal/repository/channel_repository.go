package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"hualien-aid/internal/feed"
	"hualien-aid/internal/models"
)

type ChannelRepository struct {
	Col  *mongo.Collection
	Feed feed.Publisher
}

func NewChannelRepository(db *mongo.Database, pub feed.Publisher) *ChannelRepository {
	return &ChannelRepository{Col: db.Collection(ChannelsCollection), Feed: pub}
}

func (r *ChannelRepository) FindAll(ctx context.Context) ([]models.Channel, error) {
	return findAllNewestFirst[models.Channel](ctx, r.Col)
}

func (r *ChannelRepository) Insert(ctx context.Context, draft models.ChannelDraft) (*models.Channel, error) {
	doc := draft.Document(now())
	res, err := r.Col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert channel: %w", err)
	}
	doc.ID = res.InsertedID.(bson.ObjectID)

	announce(ctx, r.Feed, ChannelsCollection)
	return &doc, nil
}

func (r *ChannelRepository) Update(ctx context.Context, id string, patch models.ChannelPatch) (*models.Channel, error) {
	set := patch.Set()
	set["updated_at"] = now()

	out, err := updateByID[models.Channel](ctx, r.Col, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	announce(ctx, r.Feed, ChannelsCollection)
	return out, nil
}

func (r *ChannelRepository) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.Col, id); err != nil {
		return err
	}
	announce(ctx, r.Feed, ChannelsCollection)
	return nil
}
