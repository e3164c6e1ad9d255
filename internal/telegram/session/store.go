// Package session keeps per-operator state for the lifetime of one
// conversation. Nothing here survives a restart.
package session

import (
	"sync"

	"github.com/shopspring/decimal"
)

// State -- состояние диалога с оператором.
type State int

const (
	StateIdle State = iota
	StateAwaitingRate
	StateAwaitingFile
)

type Session struct {
	State    State
	Rate     decimal.Decimal
	HasRate  bool
	FilePath string
}

// Store isolates each operator's session; one operator's sync never sees
// another's rate or file.
type Store interface {
	Get(operatorID int64) Session
	Put(operatorID int64, s Session)
	Clear(operatorID int64)
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

func (m *MemoryStore) Get(operatorID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[operatorID]
}

func (m *MemoryStore) Put(operatorID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[operatorID] = s
}

func (m *MemoryStore) Clear(operatorID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, operatorID)
}
