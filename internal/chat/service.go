package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/schools"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	activityWindow   = 24 * time.Hour
)

// Service implements room membership and message dispatch over the document
// store, fanning live deliveries out through the registry.
type Service struct {
	rooms    RoomStore
	messages MessageStore
	users    UserDirectory
	registry *Registry
	cache    ActivityCache // optional
}

func NewService(rooms RoomStore, messages MessageStore, users UserDirectory, registry *Registry, cache ActivityCache) *Service {
	return &Service{
		rooms:    rooms,
		messages: messages,
		users:    users,
		registry: registry,
		cache:    cache,
	}
}

// SchoolRoomID derives the deterministic room id for a school.
func SchoolRoomID(schoolID string) string {
	return "school-" + schoolID
}

// EnsureSchoolRoom creates the school-wide room on first registration into a
// school and adds the member otherwise. The store upsert is atomic, so
// concurrent registrations into the same school converge on one room.
func (s *Service) EnsureSchoolRoom(ctx context.Context, schoolID, schoolType, firstMemberID string) (string, error) {
	if schoolID == "" || firstMemberID == "" {
		return "", fmt.Errorf("%w: school id and member id required", ErrValidation)
	}

	room := &Room{
		ID:        SchoolRoomID(schoolID),
		Name:      schools.DisplayName(schoolID),
		Kind:      RoomSchool,
		SchoolID:  schoolID,
		Members:   []string{firstMemberID},
		CreatorID: firstMemberID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rooms.UpsertSchoolRoom(ctx, room, firstMemberID); err != nil {
		return "", err
	}
	return room.ID, nil
}

// CreateRoom creates a non-school room. The creator is always a member even
// when omitted from the input list.
func (s *Service) CreateRoom(ctx context.Context, name string, kind RoomKind, schoolID string, members []string, creatorID string) (string, error) {
	if name == "" || creatorID == "" {
		return "", fmt.Errorf("%w: name and creator id required", ErrValidation)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown room kind %q", ErrValidation, kind)
	}

	seen := map[string]bool{creatorID: true}
	all := []string{creatorID}
	for _, m := range members {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		all = append(all, m)
	}

	room := &Room{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		SchoolID:  schoolID,
		Members:   all,
		CreatorID: creatorID,
		IsSecret:  kind == RoomSecret,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rooms.InsertRoom(ctx, room); err != nil {
		return "", err
	}
	return room.ID, nil
}

// ListRoomsForUser returns every room the user is a member of, each annotated
// with its trailing-24h message count. Counts come from the activity cache
// when fresh, otherwise from a live count that refreshes the cache.
func (s *Service) ListRoomsForUser(ctx context.Context, userID string) ([]RoomSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrValidation)
	}
	rooms, err := s.rooms.ListRoomsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-activityWindow)
	out := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		var n int64
		if s.cache != nil {
			if cached, ok := s.cache.GetRoomActivity(ctx, room.ID); ok {
				out = append(out, RoomSummary{Room: room, RecentMessage: cached})
				continue
			}
		}
		n, err = s.messages.CountSince(ctx, room.ID, since)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.SetRoomActivity(ctx, room.ID, n)
		}
		out = append(out, RoomSummary{Room: room, RecentMessage: n})
	}
	return out, nil
}

// Join adds the user to the room's member set. Joining twice is not an error.
func (s *Service) Join(ctx context.Context, roomID, userID string) error {
	if roomID == "" || userID == "" {
		return fmt.Errorf("%w: room id and user id required", ErrValidation)
	}
	room, err := s.rooms.FindRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	return s.rooms.AddMember(ctx, roomID, userID)
}

// Leave removes the user from the room's member set. School rooms are never
// vacated: leaving one succeeds without touching membership so the caller UX
// stays uniform. Removing an absent member is not an error.
func (s *Service) Leave(ctx context.Context, roomID, userID string) error {
	if roomID == "" || userID == "" {
		return fmt.Errorf("%w: room id and user id required", ErrValidation)
	}
	room, err := s.rooms.FindRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if room.Kind == RoomSchool {
		return nil
	}
	return s.rooms.RemoveMember(ctx, roomID, userID)
}

// Send persists a message to an existing room and fans it out to that room's
// live sessions. Delivery is best effort: the message is durable regardless
// of how many live recipients were reached, and a fan-out failure never rolls
// the write back.
func (s *Service) Send(ctx context.Context, roomID, senderID, body string, kind MessageKind, attachments []string) (string, error) {
	if roomID == "" || senderID == "" {
		return "", fmt.Errorf("%w: room id and sender id required", ErrValidation)
	}
	if kind == "" {
		kind = MessageText
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown message kind %q", ErrValidation, kind)
	}

	room, err := s.rooms.FindRoom(ctx, roomID)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", ErrRoomNotFound
	}

	id, err := common.NewULID()
	if err != nil {
		return "", err
	}
	msg := &Message{
		ID:          id,
		RoomID:      roomID,
		SenderID:    senderID,
		Body:        body,
		Kind:        kind,
		Attachments: attachments,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.messages.InsertMessage(ctx, msg); err != nil {
		return "", err
	}

	s.registry.BroadcastToRoom(roomID, BroadcastPayload{
		MessageID:   msg.ID,
		RoomID:      msg.RoomID,
		SenderID:    msg.SenderID,
		SenderName:  s.senderName(ctx, senderID),
		Body:        msg.Body,
		Kind:        string(msg.Kind),
		Attachments: msg.Attachments,
		Timestamp:   msg.CreatedAt.Format(time.RFC3339),
	})

	return msg.ID, nil
}

// ListMessages returns up to limit messages for the room, oldest first, each
// joined with the sender's name and email. Default limit is 50.
func (s *Service) ListMessages(ctx context.Context, roomID string, limit int64) ([]MessageView, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id required", ErrValidation)
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	msgs, err := s.messages.ListRecent(ctx, roomID, limit)
	if err != nil {
		return nil, err
	}

	// newest-first from the store; consumers render top-to-bottom
	out := make([]MessageView, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		view := MessageView{Message: m, SenderName: "Unknown"}
		if u, err := s.users.FindUser(ctx, m.SenderID); err == nil && u != nil {
			view.SenderName = u.Name
			view.SenderEmail = u.Email
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Service) senderName(ctx context.Context, userID string) string {
	u, err := s.users.FindUser(ctx, userID)
	if err != nil || u == nil {
		return "Unknown"
	}
	return u.Name
}
