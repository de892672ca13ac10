package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/schoolconnect/school-connect/internal/models"
)

// In-memory stand-ins for the document store.

type memStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
	msgs  []Message
	users map[string]*models.User
}

func newMemStore() *memStore {
	return &memStore{
		rooms: make(map[string]*Room),
		users: make(map[string]*models.User),
	}
}

func (m *memStore) InsertRoom(_ context.Context, room *Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.ID]; ok {
		return errors.New("duplicate room id")
	}
	cp := *room
	m.rooms[room.ID] = &cp
	return nil
}

func (m *memStore) FindRoom(_ context.Context, id string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	cp.Members = append([]string(nil), room.Members...)
	return &cp, nil
}

func (m *memStore) UpsertSchoolRoom(_ context.Context, room *Room, memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rooms[room.ID]
	if !ok {
		cp := *room
		cp.Members = []string{memberID}
		m.rooms[room.ID] = &cp
		return nil
	}
	for _, id := range existing.Members {
		if id == memberID {
			return nil
		}
	}
	existing.Members = append(existing.Members, memberID)
	return nil
}

func (m *memStore) AddMember(_ context.Context, roomID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := m.rooms[roomID]
	for _, id := range room.Members {
		if id == userID {
			return nil
		}
	}
	room.Members = append(room.Members, userID)
	return nil
}

func (m *memStore) RemoveMember(_ context.Context, roomID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := m.rooms[roomID]
	out := room.Members[:0]
	for _, id := range room.Members {
		if id != userID {
			out = append(out, id)
		}
	}
	room.Members = out
	return nil
}

func (m *memStore) ListRoomsByMember(_ context.Context, userID string) ([]Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Room
	for _, room := range m.rooms {
		for _, id := range room.Members {
			if id == userID {
				out = append(out, *room)
				break
			}
		}
	}
	return out, nil
}

func (m *memStore) InsertMessage(_ context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memStore) ListRecent(_ context.Context, roomID string, limit int64) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// inserts are chronological, so newest-first is reverse insertion order
	var out []Message
	for i := len(m.msgs) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if m.msgs[i].RoomID == roomID {
			out = append(out, m.msgs[i])
		}
	}
	return out, nil
}

func (m *memStore) CountSince(_ context.Context, roomID string, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, msg := range m.msgs {
		if msg.RoomID == roomID && msg.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) FindUser(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) addUser(id, name, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = &models.User{ID: id, Name: name, Email: email}
}

type fakeCache struct {
	mu     sync.Mutex
	values map[string]int64
	hits   int
}

func (f *fakeCache) GetRoomActivity(_ context.Context, roomID string) (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.values[roomID]
	if ok {
		f.hits++
	}
	return n, ok
}

func (f *fakeCache) SetRoomActivity(_ context.Context, roomID string, n int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values == nil {
		f.values = make(map[string]int64)
	}
	f.values[roomID] = n
}

func newTestService(store *memStore) (*Service, *Registry) {
	registry := NewRegistry()
	return NewService(store, store, store, registry, nil), registry
}

func TestEnsureSchoolRoom_SingleRoomPerSchool(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	idA, err := svc.EnsureSchoolRoom(ctx, "westlake", "high_school", "userA")
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	idB, err := svc.EnsureSchoolRoom(ctx, "westlake", "high_school", "userB")
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	if idA != idB {
		t.Fatalf("two rooms for one school: %s vs %s", idA, idB)
	}

	room, err := store.FindRoom(ctx, idA)
	if err != nil || room == nil {
		t.Fatalf("school room missing: %v", err)
	}
	if room.Name != "Westlake High School" {
		t.Fatalf("expected directory name, got %q", room.Name)
	}
	if room.Kind != RoomSchool {
		t.Fatalf("expected school kind, got %q", room.Kind)
	}
	if len(room.Members) != 2 {
		t.Fatalf("expected members {A, B}, got %v", room.Members)
	}
	if len(store.rooms) != 1 {
		t.Fatalf("expected exactly one room in the store, got %d", len(store.rooms))
	}

	// repeated registration of the same user changes nothing
	if _, err := svc.EnsureSchoolRoom(ctx, "westlake", "high_school", "userA"); err != nil {
		t.Fatalf("repeat registration: %v", err)
	}
	room, _ = store.FindRoom(ctx, idA)
	if len(room.Members) != 2 {
		t.Fatalf("repeat registration changed membership: %v", room.Members)
	}
}

func TestEnsureSchoolRoom_UnknownSchoolFallsBackToRawID(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	id, err := svc.EnsureSchoolRoom(context.Background(), "nowhere_high", "high_school", "userA")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	room, _ := store.FindRoom(context.Background(), id)
	if room.Name != "nowhere_high" {
		t.Fatalf("expected raw id fallback, got %q", room.Name)
	}
}

func TestEnsureSchoolRoom_ConcurrentRegistrations(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			uid := "user" + string(rune('a'+n))
			if _, err := svc.EnsureSchoolRoom(context.Background(), "katy", "high_school", uid); err != nil {
				t.Errorf("concurrent ensure: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if len(store.rooms) != 1 {
		t.Fatalf("expected one katy room, got %d", len(store.rooms))
	}
	room, _ := store.FindRoom(context.Background(), SchoolRoomID("katy"))
	if len(room.Members) != 20 {
		t.Fatalf("expected 20 members, got %d", len(room.Members))
	}
}

func TestCreateRoom_CreatorAlwaysMember(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	id, err := svc.CreateRoom(context.Background(), "Study Group", RoomGroup, "", []string{"userB"}, "userA")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	room, _ := store.FindRoom(context.Background(), id)
	if len(room.Members) != 2 || room.Members[0] != "userA" {
		t.Fatalf("creator missing from members: %v", room.Members)
	}
	if room.IsSecret {
		t.Fatalf("group room should not be secret")
	}

	secretID, err := svc.CreateRoom(context.Background(), "hidden", RoomSecret, "", nil, "userA")
	if err != nil {
		t.Fatalf("create secret room: %v", err)
	}
	secret, _ := store.FindRoom(context.Background(), secretID)
	if !secret.IsSecret {
		t.Fatalf("secret room should carry the secrecy flag")
	}
}

func TestCreateRoom_RejectsUnknownKind(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	_, err := svc.CreateRoom(context.Background(), "x", RoomKind("broadcast"), "", nil, "userA")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJoin_IdempotentAndNotFound(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	if err := svc.Join(ctx, "missing", "userA"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", nil, "userA")
	if err := svc.Join(ctx, id, "userB"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := svc.Join(ctx, id, "userB"); err != nil {
		t.Fatalf("second join: %v", err)
	}
	room, _ := store.FindRoom(ctx, id)
	if len(room.Members) != 2 {
		t.Fatalf("join is not idempotent: %v", room.Members)
	}
}

func TestLeave_SchoolRoomIsNoOp(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	id, _ := svc.EnsureSchoolRoom(ctx, "westlake", "high_school", "userA")
	if _, err := svc.EnsureSchoolRoom(ctx, "westlake", "high_school", "userB"); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	if err := svc.Leave(ctx, id, "userA"); err != nil {
		t.Fatalf("leave school room should succeed: %v", err)
	}
	room, _ := store.FindRoom(ctx, id)
	if len(room.Members) != 2 {
		t.Fatalf("school room membership changed on leave: %v", room.Members)
	}
}

func TestLeave_GroupRoomRemovesExactlyTheMember(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", []string{"userB"}, "userA")

	if err := svc.Leave(ctx, id, "userB"); err != nil {
		t.Fatalf("leave: %v", err)
	}
	room, _ := store.FindRoom(ctx, id)
	if len(room.Members) != 1 || room.Members[0] != "userA" {
		t.Fatalf("expected members {userA}, got %v", room.Members)
	}

	// leaving again succeeds and changes nothing
	if err := svc.Leave(ctx, id, "userB"); err != nil {
		t.Fatalf("second leave: %v", err)
	}
	room, _ = store.FindRoom(ctx, id)
	if len(room.Members) != 1 || room.Members[0] != "userA" {
		t.Fatalf("second leave altered membership: %v", room.Members)
	}

	if err := svc.Leave(ctx, "missing", "userB"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}
}

func TestSend_PersistsAndBroadcasts(t *testing.T) {
	store := newMemStore()
	svc, registry := newTestService(store)
	ctx := context.Background()
	store.addUser("userA", "Alice", "alice@example.com")

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", []string{"userB", "userC"}, "userA")

	// B is connected live, C is not
	sinkB := &recordingSink{}
	registry.Register("userB", sinkB, id)

	msgID, err := svc.Send(ctx, id, "userA", "hello", MessageText, nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msgID == "" {
		t.Fatalf("expected a message id")
	}

	if sinkB.count() != 1 {
		t.Fatalf("expected one live frame for userB, got %d", sinkB.count())
	}
	payload, ok := sinkB.payloads[0].(BroadcastPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", sinkB.payloads[0])
	}
	if payload.Body != "hello" || payload.SenderName != "Alice" || payload.RoomID != id {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if _, err := time.Parse(time.RFC3339, payload.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC 3339: %q", payload.Timestamp)
	}

	views, err := svc.ListMessages(ctx, id, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 || views[0].Body != "hello" || views[0].SenderName != "Alice" {
		t.Fatalf("unexpected listing %+v", views)
	}
}

func TestSend_MissingRoomIsRejected(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)

	_, err := svc.Send(context.Background(), "missing", "userA", "hi", MessageText, nil)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected room not found, got %v", err)
	}
	if len(store.msgs) != 0 {
		t.Fatalf("message persisted for a missing room")
	}
}

func TestSend_DeliveryFailureDoesNotFailSend(t *testing.T) {
	store := newMemStore()
	svc, registry := newTestService(store)
	ctx := context.Background()

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", []string{"userB"}, "userA")
	registry.Register("userB", &recordingSink{failWith: errors.New("broken pipe")}, id)

	msgID, err := svc.Send(ctx, id, "userA", "hello", MessageText, nil)
	if err != nil {
		t.Fatalf("send should succeed despite delivery failure: %v", err)
	}
	if msgID == "" || len(store.msgs) != 1 {
		t.Fatalf("message should be durable regardless of delivery outcome")
	}
}

func TestSend_KindValidation(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", nil, "userA")

	// empty kind defaults to text
	if _, err := svc.Send(ctx, id, "userA", "hi", "", nil); err != nil {
		t.Fatalf("empty kind should default to text: %v", err)
	}
	if store.msgs[0].Kind != MessageText {
		t.Fatalf("expected text kind, got %q", store.msgs[0].Kind)
	}

	if _, err := svc.Send(ctx, id, "userA", "hi", MessageKind("video"), nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown kind should be rejected, got %v", err)
	}
}

func TestListMessages_OrderLimitAndScope(t *testing.T) {
	store := newMemStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", nil, "userA")
	other, _ := svc.CreateRoom(ctx, "Other", RoomGroup, "", nil, "userA")

	for _, body := range []string{"one", "two", "three"} {
		if _, err := svc.Send(ctx, id, "userA", body, MessageText, nil); err != nil {
			t.Fatalf("send %q: %v", body, err)
		}
	}
	if _, err := svc.Send(ctx, other, "userA", "elsewhere", MessageText, nil); err != nil {
		t.Fatalf("send other: %v", err)
	}

	views, err := svc.ListMessages(ctx, id, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(views))
	}
	for i, want := range []string{"one", "two", "three"} {
		if views[i].Body != want {
			t.Fatalf("expected oldest-first order, got %v at %d", views[i].Body, i)
		}
	}
	for i := 1; i < len(views); i++ {
		if views[i].CreatedAt.Before(views[i-1].CreatedAt) {
			t.Fatalf("creation times not non-decreasing")
		}
	}

	// unresolvable sender falls back to "Unknown"
	if views[0].SenderName != "Unknown" {
		t.Fatalf("expected Unknown sender, got %q", views[0].SenderName)
	}

	limited, err := svc.ListMessages(ctx, id, 2)
	if err != nil {
		t.Fatalf("limited list: %v", err)
	}
	if len(limited) != 2 || limited[0].Body != "two" || limited[1].Body != "three" {
		t.Fatalf("expected the 2 most recent oldest-first, got %+v", limited)
	}
}

func TestListRoomsForUser_ActivityCounts(t *testing.T) {
	store := newMemStore()
	registry := NewRegistry()
	cache := &fakeCache{}
	svc := NewService(store, store, store, registry, cache)
	ctx := context.Background()

	id, _ := svc.CreateRoom(ctx, "Study Group", RoomGroup, "", nil, "userA")
	for i := 0; i < 3; i++ {
		if _, err := svc.Send(ctx, id, "userA", "m", MessageText, nil); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	// a stale message outside the window is not counted
	store.msgs = append(store.msgs, Message{
		ID: "old", RoomID: id, SenderID: "userA", Kind: MessageText,
		CreatedAt: time.Now().Add(-25 * time.Hour),
	})

	rooms, err := svc.ListRoomsForUser(ctx, "userA")
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0].RecentMessage != 3 {
		t.Fatalf("expected 3 recent messages, got %d", rooms[0].RecentMessage)
	}

	// second call is served from the cache
	if _, err := svc.ListRoomsForUser(ctx, "userA"); err != nil {
		t.Fatalf("second list: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", cache.hits)
	}
}
