package sessionstore

import (
	"sync"
	"time"
)

type Store interface {
	Get(id string) *Session
}

type sessionEntry struct {
	session    *Session
	expiration time.Time
}

// InMemoryStore keeps sessions in process memory. A session expires after ttl
// without being looked up; state never survives a restart.
type InMemoryStore struct {
	sessions        map[string]sessionEntry
	mutex           sync.Mutex
	ttl             time.Duration
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

func NewInMemoryStore(ttl, cleanupInterval time.Duration) *InMemoryStore {
	store := &InMemoryStore{
		sessions:        make(map[string]sessionEntry),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go store.startCleanup()

	return store
}

// Get returns the session for id, creating it when missing or expired.
func (m *InMemoryStore) Get(id string) *Session {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	entry, exists := m.sessions[id]
	if !exists || now.After(entry.expiration) {
		entry = sessionEntry{session: &Session{}}
	}

	entry.expiration = now.Add(m.ttl)
	m.sessions[id] = entry

	return entry.session
}

func (m *InMemoryStore) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.sessions)
}

func (m *InMemoryStore) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

func (m *InMemoryStore) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.sessions {
				if now.After(v.expiration) {
					delete(m.sessions, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
