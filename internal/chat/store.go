package chat

import (
	"context"
	"time"

	"github.com/schoolconnect/school-connect/internal/models"
)

// RoomStore is the slice of the persistence collaborator the chat core needs
// for rooms. Single-document updates are assumed atomic; nothing here spans
// documents.
type RoomStore interface {
	InsertRoom(ctx context.Context, room *Room) error
	// FindRoom returns (nil, nil) when the room does not exist.
	FindRoom(ctx context.Context, id string) (*Room, error)
	// UpsertSchoolRoom atomically creates the room if absent and adds
	// memberID to its member set. Concurrent calls for the same room id must
	// never produce two rooms.
	UpsertSchoolRoom(ctx context.Context, room *Room, memberID string) error
	AddMember(ctx context.Context, roomID, userID string) error
	RemoveMember(ctx context.Context, roomID, userID string) error
	ListRoomsByMember(ctx context.Context, userID string) ([]Room, error)
}

type MessageStore interface {
	InsertMessage(ctx context.Context, m *Message) error
	// ListRecent returns up to limit messages for the room, newest first.
	ListRecent(ctx context.Context, roomID string, limit int64) ([]Message, error)
	CountSince(ctx context.Context, roomID string, since time.Time) (int64, error)
}

// UserDirectory is the read-only user lookup used to resolve display names.
// FindUser returns (nil, nil) when the user does not exist.
type UserDirectory interface {
	FindUser(ctx context.Context, id string) (*models.User, error)
}

// ActivityCache caches per-room trailing-24h message counts. Implementations
// degrade silently; a miss just means a live count.
type ActivityCache interface {
	GetRoomActivity(ctx context.Context, roomID string) (int64, bool)
	SetRoomActivity(ctx context.Context, roomID string, n int64)
}
