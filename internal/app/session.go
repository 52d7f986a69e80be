package app

import "sync"

// Session binds a connected account to the chain id the wallet
// reported at connect time. A session is valid only for the network it
// was created under; toggling the active network always discards it.
type Session struct {
	Address string
	ChainID int64
}

// SessionStore holds at most one live session.
type SessionStore struct {
	mu  sync.Mutex
	cur *Session
}

// Connect stores a new session, replacing any prior one unconditionally.
func (s *SessionStore) Connect(address string, chainID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := Session{Address: address, ChainID: chainID}
	s.cur = &sess
	return sess
}

// Clear discards the current session.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
}

// Current returns the live session, if any.
func (s *SessionStore) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return Session{}, false
	}
	return *s.cur, true
}
