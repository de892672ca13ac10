package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colUsers        = "users"
	colRooms        = "chat_rooms"
	colMessages     = "chat_messages"
	colAssignments  = "assignments"
	colHelpRequests = "help_requests"
	colJobs         = "assistant_jobs"
)

// Store is the document-store persistence collaborator. All documents are
// addressed by the application-level `id` field, not the store-internal _id.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connect dials the server and pings it so a bad URL fails at startup, not on
// the first request.
func Connect(ctx context.Context, url, dbName string) (*mongo.Client, *Store, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, New(client.Database(dbName)), nil
}

// EnsureIndexes provisions every collection's indexes up front instead of
// relying on create-on-first-write behavior.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	byCollection := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "school_id", Value: 1}}},
		},
		colRooms: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "members", Value: 1}}},
		},
		colMessages: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		colAssignments: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "due_date", Value: 1}}},
		},
		colHelpRequests: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		colJobs: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		},
	}

	for col, models := range byCollection {
		if _, err := s.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
