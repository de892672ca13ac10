package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/schoolconnect/school-connect/internal/models"
)

func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	_, err := s.db.Collection(colUsers).InsertOne(ctx, u)
	return err
}

// FindUser returns (nil, nil) when no user has the id.
func (s *Store) FindUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindClassmates returns users at the same school whose class list overlaps
// any of the given subjects, excluding the user themselves.
func (s *Store) FindClassmates(ctx context.Context, schoolID, excludeUserID string, subjects []string) ([]models.User, error) {
	cur, err := s.db.Collection(colUsers).Find(ctx, bson.M{
		"school_id":       schoolID,
		"id":              bson.M{"$ne": excludeUserID},
		"classes.subject": bson.M{"$in": subjects},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
