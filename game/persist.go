package game

// SessionState is the cross-round state tracked per session code.
type SessionState struct {
	Stats   SessionStats       `json:"stats"`
	History []GameHistoryEntry `json:"history"`
}

// PersistSessionState tracks session state by session code. The trainer
// ships an in-memory tracker; sessions live only as long as the process.
type PersistSessionState interface {
	Load(sessionCode string) (*SessionState, error)
	Save(sessionCode string, state *SessionState) error
	Remove(sessionCode string) error
}
