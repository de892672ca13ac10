package chat

import (
	"log"
	"sync"
)

// Sink is a live outbound channel to one connected client. The registry only
// ever writes JSON frames and closes; it never reads.
type Sink interface {
	WriteJSON(v any) error
	Close() error
}

type session struct {
	sink   Sink
	roomID string
}

// Registry tracks live sessions per user and the broadcast set per room.
// It is the only mutable shared state in the chat core; nothing here is
// persisted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session         // userID -> live session
	rooms    map[string]map[string]Sink  // roomID -> userID -> sink
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		rooms:    make(map[string]map[string]Sink),
	}
}

// Register records sink as the user's live session and, when roomID is
// non-empty, adds it to that room's broadcast set. A second registration for
// the same user displaces the first: the old sink is dropped from its room
// set and closed asynchronously so the registry lock is never held across a
// network close.
func (r *Registry) Register(userID string, sink Sink, roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.sessions[userID]; ok {
		r.removeFromRoomLocked(prev.roomID, userID)
		old := prev.sink
		go func() {
			if err := old.Close(); err != nil {
				log.Printf("[registry] close displaced session user=%s: %v", userID, err)
			}
		}()
	}

	r.sessions[userID] = &session{sink: sink, roomID: roomID}
	if roomID != "" {
		if r.rooms[roomID] == nil {
			r.rooms[roomID] = make(map[string]Sink)
		}
		r.rooms[roomID][userID] = sink
	}
}

// Unregister removes the user's live session and its room-set entry. It is a
// no-op when the user has no session, and when sink is non-nil it only
// removes a session holding that exact sink, so a stale connection tearing
// itself down cannot evict its replacement.
func (r *Registry) Unregister(userID string, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.sessions[userID]
	if !ok {
		return
	}
	if sink != nil && cur.sink != sink {
		return
	}
	r.removeFromRoomLocked(cur.roomID, userID)
	delete(r.sessions, userID)
}

func (r *Registry) removeFromRoomLocked(roomID, userID string) {
	if roomID == "" {
		return
	}
	if members, ok := r.rooms[roomID]; ok {
		delete(members, userID)
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}
}

// SendToUser delivers payload to the user's live channel. It reports whether
// a delivery was made; a missing session or a write failure is never an error
// to the caller.
func (r *Registry) SendToUser(userID string, payload any) bool {
	r.mu.RLock()
	cur, ok := r.sessions[userID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if err := cur.sink.WriteJSON(payload); err != nil {
		log.Printf("[registry] send to user=%s failed: %v", userID, err)
		return false
	}
	return true
}

// DeliveryResult aggregates the outcome of one fan-out.
type DeliveryResult struct {
	Delivered int
	Failed    int
}

// BroadcastToRoom pushes payload to every sink registered for the room,
// best effort. A failed write to one sink is counted and does not stop
// delivery to the rest. Cross-sink delivery order is unspecified.
func (r *Registry) BroadcastToRoom(roomID string, payload any) DeliveryResult {
	r.mu.RLock()
	members := r.rooms[roomID]
	sinks := make([]Sink, 0, len(members))
	users := make([]string, 0, len(members))
	for uid, s := range members {
		sinks = append(sinks, s)
		users = append(users, uid)
	}
	r.mu.RUnlock()

	var res DeliveryResult
	for i, s := range sinks {
		if err := s.WriteJSON(payload); err != nil {
			log.Printf("[registry] broadcast room=%s user=%s failed: %v", roomID, users[i], err)
			res.Failed++
			continue
		}
		res.Delivered++
	}
	return res
}

// CloseAll tears down every live session, used at server shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.rooms = make(map[string]map[string]Sink)
	r.mu.Unlock()

	for uid, s := range sessions {
		if err := s.sink.Close(); err != nil {
			log.Printf("[registry] close session user=%s: %v", uid, err)
		}
	}
}
