package game

import (
	"sync"

	"voyager.com/trainer/util"
)

// Manager hands out sessions by code so multiple trainer clients can
// each keep their own stats.
type Manager struct {
	sessionPersist PersistSessionState
	rules          HouseRules
	activeSessions map[string]*Session
	lock           sync.Mutex
}

var SessionManager *Manager

// CreateSessionManager builds the process-wide manager using the
// configured persist method and house rules.
func CreateSessionManager() *Manager {
	if SessionManager != nil {
		return SessionManager
	}
	rules := DefaultHouseRules()
	rules.DealerHitsSoft17 = util.TrainerEnvironment.GetDealerHitsSoft17()

	// The only supported backend keeps sessions in process memory.
	var persist PersistSessionState = NewMemorySessionStateTracker()
	SessionManager = NewManager(persist, rules)
	return SessionManager
}

func NewManager(persist PersistSessionState, rules HouseRules) *Manager {
	return &Manager{
		sessionPersist: persist,
		rules:          rules,
		activeSessions: make(map[string]*Session),
	}
}

// GetSession returns the session for the code, creating it on first use.
func (m *Manager) GetSession(code string) *Session {
	m.lock.Lock()
	defer m.lock.Unlock()
	if session, ok := m.activeSessions[code]; ok {
		return session
	}
	session := NewSessionWithPersist(code, m.rules, m.sessionPersist)
	m.activeSessions[code] = session
	return session
}

// EndSession drops a session and its tracked state.
func (m *Manager) EndSession(code string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.activeSessions, code)
	if m.sessionPersist != nil {
		_ = m.sessionPersist.Remove(code)
	}
}
