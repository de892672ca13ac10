package models

import "time"

// Documents are addressed by the application-level `id` field, never by the
// store-internal `_id`.

type ClassSchedule struct {
	Subject string   `bson:"subject" json:"subject"`
	Teacher string   `bson:"teacher" json:"teacher"`
	Period  string   `bson:"period" json:"period"`
	Days    []string `bson:"days" json:"days"`
	Room    string   `bson:"room" json:"room"`
}

type User struct {
	ID         string          `bson:"id" json:"id"`
	Name       string          `bson:"name" json:"name"`
	Email      string          `bson:"email" json:"email"`
	SchoolID   string          `bson:"school_id" json:"school_id"`
	SchoolType string          `bson:"school_type" json:"school_type"` // "high_school" or "college"
	GradeLevel string          `bson:"grade_level" json:"grade_level"`
	Classes    []ClassSchedule `bson:"classes" json:"classes"`
	GPA        *float64        `bson:"gpa" json:"gpa"`
	CreatedAt  time.Time       `bson:"created_at" json:"created_at"`
}

type Assignment struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title"`
	Subject     string    `bson:"subject" json:"subject"`
	DueDate     time.Time `bson:"due_date" json:"due_date"`
	Description string    `bson:"description" json:"description"`
	Completed   bool      `bson:"completed" json:"completed"`
	Priority    string    `bson:"priority" json:"priority"` // low, medium, high
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type HelpResponse struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type HelpRequest struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"user_id" json:"user_id"`
	Title       string         `bson:"title" json:"title"`
	Subject     string         `bson:"subject" json:"subject"`
	Description string         `bson:"description" json:"description"`
	ImageURLs   []string       `bson:"image_urls" json:"image_urls"`
	Responses   []HelpResponse `bson:"responses" json:"responses"`
	Status      string         `bson:"status" json:"status"` // open, answered, closed
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}
