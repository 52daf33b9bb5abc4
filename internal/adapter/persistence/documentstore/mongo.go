package documentstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"limpeza_xpto/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultMongoCollection = "documents"
	mongoCollectionField   = "_collection"
)

// MongoStore keeps every document in one Mongo collection keyed by path.
type MongoStore struct {
	coll *mongo.Collection
}

var _ interfaces.IDocumentStore = (*MongoStore)(nil)

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(DefaultMongoCollection)}
}

// EnsureIndexes creates the index List relies on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: mongoCollectionField, Value: 1}},
	})
	return err
}

func (s *MongoStore) Get(ctx context.Context, path string) (map[string]any, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	var doc bson.D
	err := s.coll.FindOne(ctx, bson.M{"_id": path}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo get %s: %w", path, err)
	}
	return fromBSON(doc)
}

func (s *MongoStore) Set(ctx context.Context, path string, fields map[string]any, mergeFields bool) error {
	if err := validatePath(path); err != nil {
		return err
	}
	doc, err := normalize(fields)
	if err != nil {
		return err
	}
	doc[mongoCollectionField] = collectionOf(path)

	if mergeFields {
		_, err = s.coll.UpdateOne(ctx, bson.M{"_id": path}, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	} else {
		doc["_id"] = path
		_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": path}, doc, options.Replace().SetUpsert(true))
	}
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", path, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := validatePath(path); err != nil {
		return err
	}
	doc, err := normalize(fields)
	if err != nil {
		return err
	}
	doc[mongoCollectionField] = collectionOf(path)

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": path}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("mongo update %s: %w", path, err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrDocumentNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": path}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", path, err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, collectionPath string) ([]map[string]any, error) {
	if err := validateCollection(collectionPath); err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{mongoCollectionField: collectionPath}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo list %s: %w", collectionPath, err)
	}
	defer cursor.Close(ctx)

	out := []map[string]any{}
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		m, err := fromBSON(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// fromBSON flattens nested primitive.D/A values and numeric widths through
// relaxed extended JSON.
func fromBSON(doc bson.D) (map[string]any, error) {
	raw, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	delete(out, "_id")
	delete(out, mongoCollectionField)
	return out, nil
}
