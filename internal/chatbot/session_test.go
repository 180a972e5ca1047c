package chatbot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// manualScheduler keeps callbacks until the test runs them.
type manualScheduler struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualScheduler) Schedule(delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, delay)
}

func (m *manualScheduler) RunPending() {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (m *manualScheduler) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		WelcomeText: "welcome",
		ClearedText: "cleared",
		ReplyDelay:  time.Second,
		ReplyJitter: time.Second,
		Now:         func() time.Time { return testNow },
		Jitter:      func(max time.Duration) time.Duration { return max / 2 },
	}
}

func testTable() *ResponseTable {
	return NewResponseTable([]Entry{{Keyword: "wifi", Reply: wifiReply}}, defaultReply)
}

func openTestSession(store Store, sched Scheduler) *Session {
	return Open(context.Background(), store, testTable(), sched, testOptions())
}

func TestOpen(t *testing.T) {
	t.Run("should start with a welcome message when nothing is stored", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		s := openTestSession(store, &manualScheduler{})

		transcript, composing := s.Transcript()
		req.Len(transcript, 1)
		req.True(transcript[0].IsBot)
		req.Equal("welcome", transcript[0].Text)
		req.Equal(testNow, transcript[0].Timestamp)
		req.False(composing)
		req.Contains(store.data, StorageKey)
	})

	t.Run("should fall back to the welcome message when the snapshot is malformed", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.data[StorageKey] = "{not json"
		s := openTestSession(store, &manualScheduler{})

		transcript, _ := s.Transcript()
		req.Len(transcript, 1)
		req.Equal("welcome", transcript[0].Text)
	})

	t.Run("should fall back when a stored timestamp is missing", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.data[StorageKey] = `[{"id":"a","text":"hi","isBot":false}]`
		s := openTestSession(store, &manualScheduler{})

		transcript, _ := s.Transcript()
		req.Len(transcript, 1)
		req.Equal("welcome", transcript[0].Text)
	})

	t.Run("should fall back when the snapshot is an empty list", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.data[StorageKey] = `[]`
		s := openTestSession(store, &manualScheduler{})

		transcript, _ := s.Transcript()
		req.Len(transcript, 1)
		req.True(transcript[0].IsBot)
	})

	t.Run("should fall back when storage is unavailable", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.getErr = errors.New("connection refused")
		store.setErr = errors.New("connection refused")
		s := openTestSession(store, &manualScheduler{})

		transcript, _ := s.Transcript()
		req.Len(transcript, 1)
		req.Equal("welcome", transcript[0].Text)
	})

	t.Run("should keep the saved transcript when a read fails", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		sched := &manualScheduler{}
		s := openTestSession(store, sched)
		for _, text := range []string{"hello", "wifi?", "parking"} {
			s.Submit(context.Background(), text)
			sched.RunPending()
		}
		saved := store.data[StorageKey]

		store.getErr = errors.New("i/o timeout")
		detached := openTestSession(store, sched)
		transcript, _ := detached.Transcript()
		req.Len(transcript, 1)
		req.Equal("welcome", transcript[0].Text)

		detached.Submit(context.Background(), "wifi")
		sched.RunPending()
		detached.Clear(context.Background())
		req.Equal(saved, store.data[StorageKey])

		store.getErr = nil
		reopened := openTestSession(store, &manualScheduler{})
		after, _ := reopened.Transcript()
		req.Len(after, 7)
		req.Equal("parking", after[5].Text)
	})

	t.Run("should restore a stored transcript with parsed timestamps", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.data[StorageKey] = `[{"id":"1","text":"welcome","isBot":true,"timestamp":"2026-10-18T10:00:00Z"},` +
			`{"id":"2","text":"wifi?","isBot":false,"timestamp":"2026-10-18T10:00:05.5Z"}]`
		s := openTestSession(store, &manualScheduler{})

		transcript, _ := s.Transcript()
		req.Len(transcript, 2)
		req.Equal("wifi?", transcript[1].Text)
		req.False(transcript[1].IsBot)
		req.Equal(time.Date(2026, 10, 18, 10, 0, 5, 500000000, time.UTC), transcript[1].Timestamp.UTC())
	})
}

func TestSubmit(t *testing.T) {
	t.Run("should ignore empty and blank input", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		_, ok := s.Submit(context.Background(), "")
		req.False(ok)
		_, ok = s.Submit(context.Background(), "   ")
		req.False(ok)

		transcript, composing := s.Transcript()
		req.Len(transcript, 1)
		req.False(composing)
		req.Zero(sched.Len())
	})

	t.Run("should append the user message now and the reply after the delay", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		msg, ok := s.Submit(context.Background(), "hello")
		req.True(ok)
		req.False(msg.IsBot)
		req.Equal("hello", msg.Text)

		transcript, composing := s.Transcript()
		req.Len(transcript, 2)
		req.True(composing)
		req.Equal([]time.Duration{1500 * time.Millisecond}, sched.delays)

		sched.RunPending()

		transcript, composing = s.Transcript()
		req.Len(transcript, 3)
		req.False(composing)
		req.True(transcript[2].IsBot)
		req.Equal(defaultReply, transcript[2].Text)
	})

	t.Run("should reject a second submission while composing", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		_, ok := s.Submit(context.Background(), "first")
		req.True(ok)
		_, ok = s.Submit(context.Background(), "second")
		req.False(ok)
		req.Equal(1, sched.Len())

		sched.RunPending()
		_, ok = s.Submit(context.Background(), "third")
		req.True(ok)
	})

	t.Run("should resolve the reply from the user's text", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		s.Submit(context.Background(), "Do you have WiFi in rooms?")
		sched.RunPending()

		transcript, _ := s.Transcript()
		req.Equal(wifiReply, transcript[len(transcript)-1].Text)
	})

	t.Run("should keep working when every write fails", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		store.setErr = errors.New("quota exceeded")
		sched := &manualScheduler{}
		s := openTestSession(store, sched)

		_, ok := s.Submit(context.Background(), "wifi")
		req.True(ok)
		sched.RunPending()

		transcript, _ := s.Transcript()
		req.Len(transcript, 3)
		req.Equal(3, store.sets)
	})

	t.Run("should assign unique ids", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		for i := 0; i < 5; i++ {
			s.Submit(context.Background(), "hello")
			sched.RunPending()
		}

		transcript, _ := s.Transcript()
		seen := make(map[string]bool)
		for _, m := range transcript {
			req.False(seen[m.ID], "duplicate id %s", m.ID)
			seen[m.ID] = true
		}
	})
}

func TestPersistReloadRoundTrip(t *testing.T) {
	req := require.New(t)
	store := newMemStore()
	sched := &manualScheduler{}
	s := openTestSession(store, sched)

	for _, text := range []string{"hello", "wifi?", "parking"} {
		s.Submit(context.Background(), text)
		sched.RunPending()
	}
	before, _ := s.Transcript()

	reloaded := openTestSession(store, &manualScheduler{})
	after, _ := reloaded.Transcript()

	req.Len(after, len(before))
	for i := range before {
		req.Equal(before[i].ID, after[i].ID)
		req.Equal(before[i].Text, after[i].Text)
		req.Equal(before[i].IsBot, after[i].IsBot)
		req.True(before[i].Timestamp.Equal(after[i].Timestamp))
	}
}

func TestClear(t *testing.T) {
	t.Run("should leave a single bot message whatever came before", func(t *testing.T) {
		req := require.New(t)
		store := newMemStore()
		sched := &manualScheduler{}
		s := openTestSession(store, sched)
		for i := 0; i < 3; i++ {
			s.Submit(context.Background(), "hello")
			sched.RunPending()
		}

		msg := s.Clear(context.Background())

		transcript, _ := s.Transcript()
		req.Len(transcript, 1)
		req.True(transcript[0].IsBot)
		req.Equal("cleared", transcript[0].Text)
		req.Equal(msg.ID, transcript[0].ID)

		reloaded := openTestSession(store, &manualScheduler{})
		after, _ := reloaded.Transcript()
		req.Len(after, 1)
		req.Equal("cleared", after[0].Text)
	})

	t.Run("should let a pending reply land after the clear", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		s := openTestSession(newMemStore(), sched)

		s.Submit(context.Background(), "wifi")
		s.Clear(context.Background())
		req.True(s.Composing())

		sched.RunPending()
		transcript, composing := s.Transcript()
		req.Len(transcript, 2)
		req.Equal(wifiReply, transcript[1].Text)
		req.False(composing)
	})
}

func TestSubscribe(t *testing.T) {
	req := require.New(t)
	sched := &manualScheduler{}
	s := openTestSession(newMemStore(), sched)

	var events []Event
	unsubscribe := s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.Submit(context.Background(), "wifi")
	sched.RunPending()
	s.Clear(context.Background())

	req.Len(events, 3)
	for i, ev := range events {
		req.Equal(uint64(i+1), ev.Seq)
	}
	req.Equal(uint64(3), s.Seq())
	req.Equal(EventMessage, events[0].Type)
	req.True(events[0].Composing)
	req.Equal(EventMessage, events[1].Type)
	req.True(events[1].Message.IsBot)
	req.False(events[1].Composing)
	req.Equal(EventCleared, events[2].Type)

	unsubscribe()
	s.Submit(context.Background(), "again")
	req.Len(events, 3)
}

func TestManager(t *testing.T) {
	req := require.New(t)
	stores := map[string]*memStore{}
	var mu sync.Mutex
	factory := func(visitorID string) Store {
		mu.Lock()
		defer mu.Unlock()
		if _, ok := stores[visitorID]; !ok {
			stores[visitorID] = newMemStore()
		}
		return stores[visitorID]
	}
	sched := &manualScheduler{}
	m := NewManager(factory, testTable(), sched, testOptions())

	a := m.Session(context.Background(), "visitor-a")
	req.Same(a, m.Session(context.Background(), "visitor-a"))

	b := m.Session(context.Background(), "visitor-b")
	req.NotSame(a, b)

	a.Submit(context.Background(), "wifi")
	sched.RunPending()

	ta, _ := a.Transcript()
	tb, _ := b.Transcript()
	req.Len(ta, 3)
	req.Len(tb, 1)
	req.NotEqual(stores["visitor-a"].data[StorageKey], stores["visitor-b"].data[StorageKey])
}

func TestManagerReadFailure(t *testing.T) {
	req := require.New(t)
	store := newMemStore()
	store.data[StorageKey] = `[{"id":"1","text":"welcome","isBot":true,"timestamp":"2026-10-18T10:00:00Z"},` +
		`{"id":"2","text":"wifi?","isBot":false,"timestamp":"2026-10-18T10:00:05Z"}]`
	saved := store.data[StorageKey]
	store.getErr = errors.New("i/o timeout")
	m := NewManager(func(string) Store { return store }, testTable(), &manualScheduler{}, testOptions())

	first := m.Session(context.Background(), "visitor-a")
	transcript, _ := first.Transcript()
	req.Len(transcript, 1)
	req.Equal(saved, store.data[StorageKey])

	store.getErr = nil
	second := m.Session(context.Background(), "visitor-a")
	req.NotSame(first, second)
	transcript, _ = second.Transcript()
	req.Len(transcript, 2)
	req.Same(second, m.Session(context.Background(), "visitor-a"))
}

// ctxStore fails like a network store once the caller's context is done.
type ctxStore struct {
	*memStore
}

func (c ctxStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	return c.memStore.Get(ctx, key)
}

func (c ctxStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.memStore.Set(ctx, key, value)
}

func TestManagerCanceledRequest(t *testing.T) {
	req := require.New(t)
	store := newMemStore()
	m := NewManager(func(string) Store { return ctxStore{store} }, testTable(), &manualScheduler{}, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := m.Session(ctx, "visitor-a")

	transcript, _ := s.Transcript()
	req.Len(transcript, 1)
	req.Contains(store.data, StorageKey)
	req.Same(s, m.Session(context.Background(), "visitor-a"))
}

func TestManagerSweep(t *testing.T) {
	var clockMu sync.Mutex
	now := testNow
	advance := func(d time.Duration) {
		clockMu.Lock()
		now = now.Add(d)
		clockMu.Unlock()
	}
	newTestManager := func(stores map[string]*memStore, sched Scheduler) *Manager {
		opts := testOptions()
		opts.IdleTimeout = 30 * time.Minute
		opts.Now = func() time.Time {
			clockMu.Lock()
			defer clockMu.Unlock()
			return now
		}
		factory := func(visitorID string) Store {
			if _, ok := stores[visitorID]; !ok {
				stores[visitorID] = newMemStore()
			}
			return stores[visitorID]
		}
		return NewManager(factory, testTable(), sched, opts)
	}

	t.Run("should drop an idle session and reload it from the store", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		m := newTestManager(map[string]*memStore{}, sched)

		a := m.Session(context.Background(), "visitor-a")
		a.Submit(context.Background(), "wifi")
		sched.RunPending()
		m.Session(context.Background(), "visitor-b")

		advance(20 * time.Minute)
		m.Session(context.Background(), "visitor-b")
		advance(15 * time.Minute)

		req.Equal(1, m.Sweep())
		req.Equal(1, m.Len())

		reloaded := m.Session(context.Background(), "visitor-a")
		req.NotSame(a, reloaded)
		before, _ := a.Transcript()
		after, _ := reloaded.Transcript()
		req.Len(after, 3)
		req.Equal(before[2].ID, after[2].ID)
	})

	t.Run("should keep sessions that are composing or subscribed", func(t *testing.T) {
		req := require.New(t)
		sched := &manualScheduler{}
		m := newTestManager(map[string]*memStore{}, sched)

		composing := m.Session(context.Background(), "visitor-a")
		composing.Submit(context.Background(), "hello")
		subscribed := m.Session(context.Background(), "visitor-b")
		unsubscribe := subscribed.Subscribe(func(Event) {})
		m.Session(context.Background(), "visitor-c")

		advance(time.Hour)
		req.Equal(1, m.Sweep())
		req.Same(composing, m.Session(context.Background(), "visitor-a"))
		req.Same(subscribed, m.Session(context.Background(), "visitor-b"))

		sched.RunPending()
		unsubscribe()
		advance(time.Hour)
		req.Equal(2, m.Sweep())
		req.Zero(m.Len())
	})

	t.Run("should never evict without an idle timeout", func(t *testing.T) {
		req := require.New(t)
		m := NewManager(func(string) Store { return newMemStore() }, testTable(), &manualScheduler{}, testOptions())
		m.Session(context.Background(), "visitor-a")

		req.Zero(m.Sweep())
		req.Equal(1, m.Len())
	})
}
