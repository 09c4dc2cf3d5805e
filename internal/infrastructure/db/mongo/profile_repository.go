package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

var _ ports.ProfileStore = (*ProfileRepository)(nil)

// ProfileRepository implements ports.ProfileStore. A slash-separated
// collection path such as artifacts/app/public/data/user_profiles maps to the
// collection artifacts.app.public.data.user_profiles, and the document key is
// stored as _id.
type ProfileRepository struct {
	db *mongo.Database
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// CollectionName converts a document collection path to a Mongo collection name.
func CollectionName(collectionPath string) string {
	return strings.ReplaceAll(strings.Trim(collectionPath, "/"), "/", ".")
}

// UpsertDocument replaces the document under key, creating it when absent.
func (r *ProfileRepository) UpsertDocument(ctx context.Context, collectionPath, key string, fields map[string]any) error {
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["_id"] = key

	_, err := r.db.Collection(CollectionName(collectionPath)).ReplaceOne(
		ctx,
		bson.M{"_id": key},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collectionPath, key, err)
	}
	return nil
}

// FindDocument returns the fields stored under key, without _id. Stored dates
// come back as time.Time.
func (r *ProfileRepository) FindDocument(ctx context.Context, collectionPath, key string) (map[string]any, error) {
	var raw bson.M
	err := r.db.Collection(CollectionName(collectionPath)).FindOne(ctx, bson.M{"_id": key}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find %s/%s: %w", collectionPath, key, err)
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		out[k] = fromBSON(v)
	}
	return out, nil
}

// EnsureIndexes creates the lookup indexes on the profile collection.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context, collectionPath string) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "parish", Value: 1}, {Key: "youthGroup", Value: 1}}},
	}

	_, err := r.db.Collection(CollectionName(collectionPath)).Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("ensure profile indexes: %w", err)
	}
	return nil
}

func fromBSON(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	default:
		return v
	}
}
