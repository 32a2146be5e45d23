package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PackSizeDocument is a single registered pack size.
type PackSizeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Size      int                `bson:"size" json:"size"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// PackSizesRepository stores pack sizes in the pack_sizes collection.
type PackSizesRepository struct {
	collection *mongo.Collection
}

// NewPackSizesRepository creates a new pack sizes repository.
func NewPackSizesRepository(db *MongoDB) *PackSizesRepository {
	return &PackSizesRepository{
		collection: db.PackSizes,
	}
}

// List returns the stored sizes in ascending order.
func (r *PackSizesRepository) List(ctx context.Context) ([]int, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "size", Value: 1}}).
		SetProjection(bson.M{"size": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []PackSizeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	sizes := make([]int, len(docs))
	for i, doc := range docs {
		sizes[i] = doc.Size
	}
	return sizes, nil
}

// Insert upserts size. Existing documents are left untouched.
func (r *PackSizesRepository) Insert(ctx context.Context, size int, createdBy string) (bool, error) {
	update := bson.M{
		"$setOnInsert": bson.M{
			"size":       size,
			"created_at": time.Now().UTC(),
			"created_by": createdBy,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"size": size}, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// lost an upsert race on the unique index
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// Delete removes size.
func (r *PackSizesRepository) Delete(ctx context.Context, size int) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"size": size})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPackSizeNotFound
	}
	return nil
}
