package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolconnect/school-connect/internal/models"
)

func (s *Store) InsertAssignment(ctx context.Context, a *models.Assignment) error {
	_, err := s.db.Collection(colAssignments).InsertOne(ctx, a)
	return err
}

// ListAssignmentsByUser returns the user's assignments sorted by due date.
func (s *Store) ListAssignmentsByUser(ctx context.Context, userID string) ([]models.Assignment, error) {
	cur, err := s.db.Collection(colAssignments).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Assignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAssignment applies a partial $set. It reports whether an assignment
// with the id existed.
func (s *Store) UpdateAssignment(ctx context.Context, id string, fields map[string]any) (bool, error) {
	res, err := s.db.Collection(colAssignments).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
