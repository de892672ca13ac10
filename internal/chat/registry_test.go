package chat

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// recordingSink captures frames pushed by the registry; it can be told to
// fail every write.
type recordingSink struct {
	mu       sync.Mutex
	payloads []any
	failWith error
	closed   bool
}

func (s *recordingSink) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.payloads = append(s.payloads, v)
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

func (s *recordingSink) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func TestBroadcastToRoom_DeliversToAllMembers(t *testing.T) {
	r := NewRegistry()
	a := &recordingSink{}
	b := &recordingSink{}
	r.Register("alice", a, "room1")
	r.Register("bob", b, "room1")

	res := r.BroadcastToRoom("room1", "hello")
	if res.Delivered != 2 || res.Failed != 0 {
		t.Fatalf("expected 2 delivered / 0 failed, got %+v", res)
	}
	if a.count() != 1 || b.count() != 1 {
		t.Fatalf("expected one frame each, got a=%d b=%d", a.count(), b.count())
	}
}

func TestBroadcastToRoom_OneFailureDoesNotBlockOthers(t *testing.T) {
	r := NewRegistry()
	good1 := &recordingSink{}
	bad := &recordingSink{failWith: errors.New("write failed")}
	good2 := &recordingSink{}
	r.Register("a", good1, "room1")
	r.Register("b", bad, "room1")
	r.Register("c", good2, "room1")

	res := r.BroadcastToRoom("room1", "payload")
	if res.Delivered != 2 {
		t.Fatalf("expected 2 delivered, got %d", res.Delivered)
	}
	if res.Failed != 1 {
		t.Fatalf("expected 1 failed, got %d", res.Failed)
	}
	if good1.count() != 1 || good2.count() != 1 {
		t.Fatalf("healthy sinks missed the broadcast: %d, %d", good1.count(), good2.count())
	}
}

func TestBroadcastToRoom_ScopedToRoom(t *testing.T) {
	r := NewRegistry()
	in := &recordingSink{}
	out := &recordingSink{}
	r.Register("inside", in, "room1")
	r.Register("outside", out, "room2")

	r.BroadcastToRoom("room1", "hi")
	if in.count() != 1 {
		t.Fatalf("room member should receive broadcast")
	}
	if out.count() != 0 {
		t.Fatalf("other room's member should not receive broadcast")
	}
}

func TestSendToUser(t *testing.T) {
	r := NewRegistry()
	s := &recordingSink{}
	r.Register("alice", s, "")

	if !r.SendToUser("alice", "direct") {
		t.Fatalf("expected delivery to connected user")
	}
	if r.SendToUser("nobody", "direct") {
		t.Fatalf("expected not-connected report for unknown user")
	}
	if s.count() != 1 {
		t.Fatalf("expected 1 frame, got %d", s.count())
	}
}

func TestRegister_DisplacesPreviousSession(t *testing.T) {
	r := NewRegistry()
	old := &recordingSink{}
	r.Register("alice", old, "room1")

	fresh := &recordingSink{}
	r.Register("alice", fresh, "room2")

	// displaced handle is closed asynchronously
	deadline := time.Now().Add(time.Second)
	for !old.isClosed() {
		if time.Now().After(deadline) {
			t.Fatalf("displaced sink was never closed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// old room set no longer carries the user
	if res := r.BroadcastToRoom("room1", "x"); res.Delivered != 0 {
		t.Fatalf("old room still delivered %d frames", res.Delivered)
	}
	if res := r.BroadcastToRoom("room2", "y"); res.Delivered != 1 {
		t.Fatalf("new room delivered %d frames, want 1", res.Delivered)
	}
}

func TestUnregister_IdempotentAndGuarded(t *testing.T) {
	r := NewRegistry()

	// unknown user is a no-op
	r.Unregister("ghost", nil)

	cur := &recordingSink{}
	r.Register("alice", cur, "room1")

	// a stale sink cannot evict the current session
	stale := &recordingSink{}
	r.Unregister("alice", stale)
	if !r.SendToUser("alice", "still here") {
		t.Fatalf("stale unregister evicted the live session")
	}

	r.Unregister("alice", cur)
	if r.SendToUser("alice", "gone") {
		t.Fatalf("session should be removed")
	}
	r.Unregister("alice", cur) // second time is a no-op
}

func TestCloseAll(t *testing.T) {
	r := NewRegistry()
	a := &recordingSink{}
	b := &recordingSink{}
	r.Register("a", a, "room1")
	r.Register("b", b, "room1")

	r.CloseAll()

	if !a.isClosed() || !b.isClosed() {
		t.Fatalf("expected all sinks closed")
	}
	if res := r.BroadcastToRoom("room1", "x"); res.Delivered != 0 {
		t.Fatalf("registry should be empty after CloseAll")
	}
}

func TestRegistry_ConcurrentRegisterBroadcast(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register(string(rune('a'+n%26)), &recordingSink{}, "room1")
		}(i)
		go func() {
			defer wg.Done()
			r.BroadcastToRoom("room1", "x")
		}()
	}
	wg.Wait()
}
