package chatbot

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/pkg/log"

	"github.com/google/uuid"
)

// StorageKey 是聊天记录在访客存储中的固定键。
const StorageKey = "chatHistory"

// Store 是访客级别的键值存储。Get 在键不存在时返回 found=false 且 err=nil。
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Options 控制会话的文案、回复延迟和时钟。
type Options struct {
	WelcomeText  string
	ClearedText  string
	ReplyDelay   time.Duration
	ReplyJitter  time.Duration
	StoreTimeout time.Duration
	// IdleTimeout 只由 Manager 使用：会话空闲超过该时长后被逐出缓存。0 表示不逐出。
	IdleTimeout time.Duration
	// Now 默认为 time.Now。
	Now func() time.Time
	// Jitter 返回 [0, max) 内的随机时长，默认使用 math/rand/v2。
	Jitter func(max time.Duration) time.Duration
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Jitter == nil {
		o.Jitter = func(max time.Duration) time.Duration {
			return time.Duration(rand.Int64N(int64(max)))
		}
	}
	return o
}

// 会话事件类型。
const (
	EventMessage = "message"
	EventCleared = "cleared"
)

// Event 在聊天记录变化后通知订阅者。
// Seq 在会话内严格递增，与聊天记录的变更顺序一致；回调可能乱序到达，订阅者据此丢弃旧事件。
type Event struct {
	Seq       uint64            `json:"seq"`
	Type      string            `json:"type"`
	Message   model.ChatMessage `json:"message"`
	Composing bool              `json:"composing"`
}

type loadResult int

const (
	loadRestored loadResult = iota
	// loadMissing 表示没有可用的快照（不存在、为空或格式错误），可以用欢迎消息覆盖。
	loadMissing
	// loadFailed 表示读取本身失败，存储中可能仍有有效快照，不能覆盖。
	loadFailed
)

// Session 保存一位访客的聊天记录，并对每条用户消息给出一条预设回复。
//
// 所有状态变更和存储写入都在 mu 内完成，保证快照按追加顺序落盘；
// 订阅者回调在锁外执行。
type Session struct {
	store Store
	table *ResponseTable
	sched Scheduler
	opts  Options

	mu        sync.Mutex
	messages  []model.ChatMessage
	composing bool
	seq       uint64
	// detached 的会话读取快照失败，只在内存中工作，从不写入存储。
	detached bool

	listenersMu  sync.Mutex
	listeners    map[int]func(Event)
	nextListener int
}

// Open 激活一个会话：从 store 读取已保存的聊天记录，读取失败、为空或格式错误时使用欢迎消息。
// Open 从不返回存储错误。读取失败时会话不会写入存储，已保存的聊天记录保持不变。
func Open(ctx context.Context, store Store, table *ResponseTable, sched Scheduler, opts Options) *Session {
	s, _ := open(ctx, store, table, sched, opts)
	return s
}

// open 与 Open 相同，另外报告快照是否读取成功（包括确认不存在）。
func open(ctx context.Context, store Store, table *ResponseTable, sched Scheduler, opts Options) (*Session, bool) {
	s := &Session{
		store:     store,
		table:     table,
		sched:     sched,
		opts:      opts.withDefaults(),
		listeners: make(map[int]func(Event)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	restored, result := s.load(ctx)
	switch result {
	case loadRestored:
		s.messages = restored
	case loadMissing:
		s.messages = []model.ChatMessage{s.newMessage(s.opts.WelcomeText, true)}
	case loadFailed:
		s.messages = []model.ChatMessage{s.newMessage(s.opts.WelcomeText, true)}
		s.detached = true
		return s, false
	}
	s.persistLocked(ctx)
	return s, true
}

// Transcript 返回聊天记录的副本，以及是否正在等待机器人回复。
func (s *Session) Transcript() ([]model.ChatMessage, bool) {
	messages, composing, _ := s.Snapshot()
	return messages, composing
}

// Snapshot 与 Transcript 相同，另外返回快照对应的事件序号。序号不大于它的事件已包含在快照中。
func (s *Session) Snapshot() ([]model.ChatMessage, bool, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]model.ChatMessage, len(s.messages))
	copy(copied, s.messages)
	return copied, s.composing, s.seq
}

// Composing 表示是否有尚未送达的机器人回复。
func (s *Session) Composing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composing
}

// Submit 追加一条用户消息并安排机器人回复。
// 空白输入或上一条回复尚未送达时什么也不做，返回 false。
func (s *Session) Submit(ctx context.Context, text string) (model.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return model.ChatMessage{}, false
	}

	s.mu.Lock()
	if s.composing {
		s.mu.Unlock()
		return model.ChatMessage{}, false
	}
	msg := s.newMessage(text, false)
	s.messages = append(s.messages, msg)
	s.composing = true
	s.seq++
	ev := Event{Seq: s.seq, Type: EventMessage, Message: msg, Composing: true}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ev)
	s.sched.Schedule(s.replyDelay(), func() { s.reply(text) })
	return msg, true
}

// reply 在模拟延迟结束后追加机器人回复。请求上下文此时可能已结束，因此使用独立的上下文。
func (s *Session) reply(userText string) {
	answer := s.table.Resolve(userText)

	s.mu.Lock()
	msg := s.newMessage(answer, true)
	s.messages = append(s.messages, msg)
	s.composing = false
	s.seq++
	ev := Event{Seq: s.seq, Type: EventMessage, Message: msg, Composing: false}
	s.persistLocked(context.Background())
	s.mu.Unlock()

	s.emit(ev)
}

// Clear 丢弃聊天记录，只保留一条新的欢迎消息，并覆盖已保存的快照。
// 已安排的回复不会被取消，送达时会追加到新的聊天记录后面。
func (s *Session) Clear(ctx context.Context) model.ChatMessage {
	s.mu.Lock()
	msg := s.newMessage(s.opts.ClearedText, true)
	s.messages = []model.ChatMessage{msg}
	s.seq++
	ev := Event{Seq: s.seq, Type: EventCleared, Message: msg, Composing: s.composing}

	if !s.detached {
		storeCtx, cancel := s.storeContext(ctx)
		if err := s.store.Remove(storeCtx, StorageKey); err != nil {
			log.Warnf("[Chatbot] 删除聊天记录失败: %v", err)
		}
		cancel()
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.emit(ev)
	return msg
}

// Subscribe 注册一个事件回调，返回取消订阅的函数。回调不能阻塞。
func (s *Session) Subscribe(fn func(Event)) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

// Seq 返回最近一次变更的序号，与 Transcript 配合可作为快照的版本。
func (s *Session) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// idle 表示会话没有待送达的回复，也没有订阅者。
func (s *Session) idle() bool {
	s.listenersMu.Lock()
	listeners := len(s.listeners)
	s.listenersMu.Unlock()
	return listeners == 0 && !s.Composing()
}

func (s *Session) emit(ev Event) {
	s.listenersMu.Lock()
	fns := make([]func(Event), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// load 读取并解析已保存的快照。
func (s *Session) load(ctx context.Context) ([]model.ChatMessage, loadResult) {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	raw, found, err := s.store.Get(storeCtx, StorageKey)
	if err != nil {
		log.Warnf("[Chatbot] 读取聊天记录失败，使用欢迎消息且不写入存储: %v", err)
		return nil, loadFailed
	}
	if !found || raw == "" {
		return nil, loadMissing
	}

	var messages []model.ChatMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		log.Warnf("[Chatbot] 聊天记录格式错误，使用欢迎消息: %v", err)
		return nil, loadMissing
	}
	if len(messages) == 0 {
		return nil, loadMissing
	}
	for _, m := range messages {
		if m.Timestamp.IsZero() {
			log.Warnf("[Chatbot] 聊天记录中的消息 %q 缺少时间戳，使用欢迎消息", m.ID)
			return nil, loadMissing
		}
	}
	return messages, loadRestored
}

// persistLocked 把完整的聊天记录写入存储。失败只记录日志。调用方必须持有 mu。
func (s *Session) persistLocked(ctx context.Context) {
	if s.detached {
		return
	}
	data, err := json.Marshal(s.messages)
	if err != nil {
		log.Warnf("[Chatbot] 序列化聊天记录失败: %v", err)
		return
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.store.Set(storeCtx, StorageKey, string(data)); err != nil {
		log.Warnf("[Chatbot] 保存聊天记录失败: %v", err)
	}
}

func (s *Session) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.StoreTimeout > 0 {
		return context.WithTimeout(ctx, s.opts.StoreTimeout)
	}
	return context.WithCancel(ctx)
}

func (s *Session) newMessage(text string, isBot bool) model.ChatMessage {
	return model.ChatMessage{
		ID:        newMessageID(),
		Text:      text,
		IsBot:     isBot,
		Timestamp: s.opts.Now(),
	}
}

func (s *Session) replyDelay() time.Duration {
	delay := s.opts.ReplyDelay
	if s.opts.ReplyJitter > 0 {
		delay += s.opts.Jitter(s.opts.ReplyJitter)
	}
	return delay
}

// newMessageID 使用按时间排序的 UUIDv7。
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
