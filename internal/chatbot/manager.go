package chatbot

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"amassah-lodge-go/pkg/log"
)

// StoreFactory 返回某位访客独占的存储。
type StoreFactory func(visitorID string) Store

// Manager 按访客 ID 懒加载并缓存会话，每位访客只有一个会话实例。
// 空闲超过 Options.IdleTimeout 的会话由 Sweep 逐出，下次访问时重新从存储恢复。
type Manager struct {
	stores StoreFactory
	table  *ResponseTable
	sched  Scheduler
	opts   Options

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	// open 串行化同一访客的恢复过程。
	open       sync.Mutex
	session    atomic.Pointer[Session]
	lastAccess time.Time // 由 Manager.mu 保护
}

// NewManager 创建一个新的 Manager。
func NewManager(stores StoreFactory, table *ResponseTable, sched Scheduler, opts Options) *Manager {
	return &Manager{
		stores:   stores,
		table:    table,
		sched:    sched,
		opts:     opts.withDefaults(),
		sessions: make(map[string]*sessionEntry),
	}
}

// Session 返回访客的会话，首次访问时从存储中恢复。不同访客的恢复互不阻塞。
// 读取快照失败时返回一个不写入存储的临时会话，且不缓存它，下次访问会重新读取。
func (m *Manager) Session(ctx context.Context, visitorID string) *Session {
	m.mu.Lock()
	e, ok := m.sessions[visitorID]
	if !ok {
		e = &sessionEntry{}
		m.sessions[visitorID] = e
	}
	e.lastAccess = m.opts.Now()
	m.mu.Unlock()

	if s := e.session.Load(); s != nil {
		return s
	}

	e.open.Lock()
	defer e.open.Unlock()
	if s := e.session.Load(); s != nil {
		return s
	}
	// 会话比请求活得久，恢复时写入的快照不能因请求结束而被取消。
	s, ok := open(context.WithoutCancel(ctx), m.stores(visitorID), m.table, m.sched, m.opts)
	if !ok {
		log.Warnf("[Chatbot] 访客 %s 的聊天记录暂时无法读取，本次使用临时会话", visitorID)
		return s
	}
	e.session.Store(s)
	return s
}

// Sweep 逐出空闲超时的会话并返回逐出的数量。正在回复或仍有订阅者的会话不会被逐出。
func (m *Manager) Sweep() int {
	if m.opts.IdleTimeout <= 0 {
		return 0
	}
	cutoff := m.opts.Now().Add(-m.opts.IdleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	for id, e := range m.sessions {
		if e.lastAccess.After(cutoff) {
			continue
		}
		if s := e.session.Load(); s != nil && !s.idle() {
			continue
		}
		delete(m.sessions, id)
		evicted++
	}
	return evicted
}

// Run 每隔 interval 调用一次 Sweep，直到 ctx 结束。
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if m.opts.IdleTimeout <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("[Chatbot] 会话清理已停止")
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Infof("[Chatbot] 已逐出 %d 个空闲会话", n)
			}
		}
	}
}

// Len 返回当前缓存的会话数量。
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Table 返回会话使用的应答表。
func (m *Manager) Table() *ResponseTable {
	return m.table
}
