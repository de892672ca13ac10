package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schoolconnect/school-connect/internal/models"
)

func (s *Store) InsertHelpRequest(ctx context.Context, hr *models.HelpRequest) error {
	_, err := s.db.Collection(colHelpRequests).InsertOne(ctx, hr)
	return err
}

// ListHelpRequests returns help requests newest first. An empty userID lists
// everyone's.
func (s *Store) ListHelpRequests(ctx context.Context, userID string) ([]models.HelpRequest, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cur, err := s.db.Collection(colHelpRequests).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.HelpRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendHelpResponse pushes a response onto the request's thread. It reports
// whether the request existed.
func (s *Store) AppendHelpResponse(ctx context.Context, requestID string, resp models.HelpResponse) (bool, error) {
	res, err := s.db.Collection(colHelpRequests).UpdateOne(ctx,
		bson.M{"id": requestID},
		bson.M{"$push": bson.M{"responses": resp}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
