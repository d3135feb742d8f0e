package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// MongoStore keeps each collection as a single MongoDB document holding the
// full array, keyed by collection name. ReplaceOne swaps the whole array in
// one atomic document write, which preserves the write-all contract.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoCollection struct {
	Name string            `bson:"_id"`
	Docs []models.Document `bson:"docs"`
}

// NewMongoStore connects to MongoDB and pings the primary to verify the
// connection before returning.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	log.Println("Successfully connected to MongoDB!")
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("collections"),
	}, nil
}

func (s *MongoStore) ReadAll(ctx context.Context, collection string) ([]models.Document, error) {
	if err := Validate(collection); err != nil {
		return nil, err
	}
	var stored mongoCollection
	err := s.coll.FindOne(ctx, bson.M{"_id": collection}).Decode(&stored)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []models.Document{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	if stored.Docs == nil {
		return []models.Document{}, nil
	}
	return stored.Docs, nil
}

func (s *MongoStore) WriteAll(ctx context.Context, collection string, docs []models.Document) error {
	if err := Validate(collection); err != nil {
		return err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": collection},
		mongoCollection{Name: collection, Docs: docs},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
