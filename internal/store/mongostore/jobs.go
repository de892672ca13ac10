package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/schoolconnect/school-connect/internal/ai"
)

func (s *Store) InsertJob(ctx context.Context, job *ai.Job) error {
	_, err := s.db.Collection(colJobs).InsertOne(ctx, job)
	return err
}

// FindJob returns (nil, nil) when no job has the id.
func (s *Store) FindJob(ctx context.Context, id string) (*ai.Job, error) {
	var job ai.Job
	err := s.db.Collection(colJobs).FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// MarkJobRunning transitions queued -> running. It reports whether the
// transition happened, so two workers cannot both claim a job.
func (s *Store) MarkJobRunning(ctx context.Context, id string) (bool, error) {
	res, err := s.db.Collection(colJobs).UpdateOne(ctx,
		bson.M{"id": id, "status": ai.JobQueued},
		bson.M{"$set": bson.M{"status": ai.JobRunning, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *Store) MarkJobSucceeded(ctx context.Context, id, response string) error {
	_, err := s.db.Collection(colJobs).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"status":     ai.JobSucceeded,
			"response":   response,
			"error":      "",
			"updated_at": time.Now().UTC(),
		}},
	)
	return err
}

func (s *Store) MarkJobFailed(ctx context.Context, id, errMsg string) error {
	_, err := s.db.Collection(colJobs).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"status":     ai.JobFailed,
			"error":      errMsg,
			"updated_at": time.Now().UTC(),
		}},
	)
	return err
}
