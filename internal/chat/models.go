package chat

import "time"

// RoomKind enumerates the supported room types. Unknown kinds are rejected at
// the service boundary rather than stored as-is.
type RoomKind string

const (
	RoomSchool RoomKind = "school"
	RoomGroup  RoomKind = "group"
	RoomSecret RoomKind = "secret"
	RoomDirect RoomKind = "direct"
)

func (k RoomKind) Valid() bool {
	switch k {
	case RoomSchool, RoomGroup, RoomSecret, RoomDirect:
		return true
	}
	return false
}

// MessageKind enumerates message payload types.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageImage MessageKind = "image"
	MessageFile  MessageKind = "file"
)

func (k MessageKind) Valid() bool {
	switch k {
	case MessageText, MessageImage, MessageFile:
		return true
	}
	return false
}

type Room struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Kind      RoomKind  `bson:"kind" json:"kind"`
	SchoolID  string    `bson:"school_id,omitempty" json:"school_id,omitempty"`
	Members   []string  `bson:"members" json:"members"`
	CreatorID string    `bson:"creator_id" json:"creator_id"`
	IsSecret  bool      `bson:"is_secret" json:"is_secret"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Message struct {
	ID          string      `bson:"id" json:"id"`
	RoomID      string      `bson:"room_id" json:"room_id"`
	SenderID    string      `bson:"sender_id" json:"sender_id"`
	Body        string      `bson:"body" json:"body"`
	Kind        MessageKind `bson:"kind" json:"kind"`
	Attachments []string    `bson:"attachments" json:"attachments"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
}

// RoomSummary is one entry of ListRoomsForUser: the room plus the count of
// messages created in it over the trailing 24 hours.
type RoomSummary struct {
	Room          Room  `json:"room"`
	RecentMessage int64 `json:"recent_message_count"`
}

// BroadcastPayload is the JSON frame pushed to live sessions of a room.
type BroadcastPayload struct {
	MessageID   string   `json:"message_id"`
	RoomID      string   `json:"room_id"`
	SenderID    string   `json:"sender_id"`
	SenderName  string   `json:"sender_name"`
	Body        string   `json:"body"`
	Kind        string   `json:"kind"`
	Attachments []string `json:"attachments"`
	Timestamp   string   `json:"timestamp"` // RFC 3339
}

// MessageView is a message joined with its sender's directory info, as
// returned by ListMessages.
type MessageView struct {
	Message
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
}
