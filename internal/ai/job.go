package ai

import "time"

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Job is one async assistant request, persisted so its result can be polled.
type Job struct {
	ID        string    `bson:"id" json:"id"` // ULID
	UserID    string    `bson:"user_id" json:"user_id"`
	Subject   string    `bson:"subject" json:"subject"`
	Prompt    string    `bson:"prompt" json:"prompt"`
	Status    JobStatus `bson:"status" json:"status"`
	Response  string    `bson:"response,omitempty" json:"response,omitempty"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
