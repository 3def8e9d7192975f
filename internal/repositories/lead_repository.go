package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crmlite/internal/models"
)

type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection("leads")}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *models.Lead) error {
	res, err := r.col.InsertOne(ctx, lead)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid
	}
	return nil
}

// List returns all leads, newest first.
func (r *LeadRepository) List(ctx context.Context) ([]*models.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	var out []*models.Lead
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	return out, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var l models.Lead
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// Delete removes a lead and reports whether it existed.
func (r *LeadRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete lead: %w", err)
	}
	return res.DeletedCount > 0, nil
}
