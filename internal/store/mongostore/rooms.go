package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolconnect/school-connect/internal/chat"
)

func (s *Store) InsertRoom(ctx context.Context, room *chat.Room) error {
	_, err := s.db.Collection(colRooms).InsertOne(ctx, room)
	return err
}

func (s *Store) FindRoom(ctx context.Context, id string) (*chat.Room, error) {
	var room chat.Room
	err := s.db.Collection(colRooms).FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// UpsertSchoolRoom is the atomic create-if-absent for school-wide rooms.
// $setOnInsert fills the room document on first registration into the school;
// $addToSet makes membership idempotent for everyone after.
func (s *Store) UpsertSchoolRoom(ctx context.Context, room *chat.Room, memberID string) error {
	_, err := s.db.Collection(colRooms).UpdateOne(ctx,
		bson.M{"id": room.ID},
		bson.M{
			"$setOnInsert": bson.M{
				"id":         room.ID,
				"name":       room.Name,
				"kind":       room.Kind,
				"school_id":  room.SchoolID,
				"creator_id": room.CreatorID,
				"is_secret":  false,
				"created_at": room.CreatedAt,
			},
			"$addToSet": bson.M{"members": memberID},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Store) AddMember(ctx context.Context, roomID, userID string) error {
	_, err := s.db.Collection(colRooms).UpdateOne(ctx,
		bson.M{"id": roomID},
		bson.M{"$addToSet": bson.M{"members": userID}},
	)
	return err
}

func (s *Store) RemoveMember(ctx context.Context, roomID, userID string) error {
	_, err := s.db.Collection(colRooms).UpdateOne(ctx,
		bson.M{"id": roomID},
		bson.M{"$pull": bson.M{"members": userID}},
	)
	return err
}

func (s *Store) ListRoomsByMember(ctx context.Context, userID string) ([]chat.Room, error) {
	cur, err := s.db.Collection(colRooms).Find(ctx,
		bson.M{"members": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rooms []chat.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *Store) InsertMessage(ctx context.Context, m *chat.Message) error {
	_, err := s.db.Collection(colMessages).InsertOne(ctx, m)
	return err
}

// ListRecent returns up to limit messages for the room, newest first.
func (s *Store) ListRecent(ctx context.Context, roomID string, limit int64) ([]chat.Message, error) {
	cur, err := s.db.Collection(colMessages).Find(ctx,
		bson.M{"room_id": roomID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var msgs []chat.Message
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Store) CountSince(ctx context.Context, roomID string, since time.Time) (int64, error) {
	return s.db.Collection(colMessages).CountDocuments(ctx, bson.M{
		"room_id":    roomID,
		"created_at": bson.M{"$gt": since},
	})
}
