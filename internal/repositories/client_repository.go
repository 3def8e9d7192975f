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

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection("clients")}
}

// EnsureIndexes creates the unique index on clientId. Two racing
// creations can compute the same next id; the index turns the lost
// race into an insert error instead of a silent duplicate.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "clientId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"clientId": bson.M{"$exists": true}}),
	})
	if err != nil {
		return fmt.Errorf("ensure clientId index: %w", err)
	}
	return nil
}

func (r *ClientRepository) Insert(ctx context.Context, client *models.Client) error {
	res, err := r.col.InsertOne(ctx, client)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		client.ID = oid
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var out []*models.Client
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return out, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var c models.Client
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// HighestClientID returns the highest assigned clientId, or "" when no
// client has one yet. Ids are zero-padded so the lexicographic sort is
// also the numeric sort.
func (r *ClientRepository) HighestClientID(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "clientId", Value: -1}})
	var c models.Client
	err := r.col.FindOne(ctx, bson.M{"clientId": bson.M{"$exists": true}}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("highest clientId: %w", err)
	}
	return c.ClientID, nil
}

// Replace performs the full-field update the edit form submits.
// clientId, source and createdAt are immutable and left untouched.
func (r *ClientRepository) Replace(ctx context.Context, id primitive.ObjectID, client *models.Client) (*models.Client, error) {
	update := bson.M{"$set": bson.M{
		"name":    client.Name,
		"email":   client.Email,
		"revenue": client.Revenue,
		"status":  client.Status,
		"phone":   client.Phone,
		"company": client.Company,
		"address": client.Address,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Client
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return &updated, nil
}

// Delete removes a client and reports whether it existed.
func (r *ClientRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount > 0, nil
}
