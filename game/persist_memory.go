package game

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// MemorySessionStateTracker keeps serialized session state in a map.
type MemorySessionStateTracker struct {
	sessions map[string][]byte
}

func NewMemorySessionStateTracker() *MemorySessionStateTracker {
	return &MemorySessionStateTracker{
		sessions: make(map[string][]byte),
	}
}

func (m *MemorySessionStateTracker) Load(sessionCode string) (*SessionState, error) {
	stateBytes, ok := m.sessions[sessionCode]
	if !ok {
		return nil, fmt.Errorf("Session state for Key: %s is not found", sessionCode)
	}
	state := SessionState{}
	err := jsoniter.Unmarshal(stateBytes, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (m *MemorySessionStateTracker) Save(sessionCode string, state *SessionState) error {
	stateBytes, err := jsoniter.Marshal(state)
	if err != nil {
		return err
	}
	m.sessions[sessionCode] = stateBytes
	return nil
}

func (m *MemorySessionStateTracker) Remove(sessionCode string) error {
	delete(m.sessions, sessionCode)
	return nil
}
