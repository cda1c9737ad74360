package inbound

import "sync"

// Session tracks the account logged in on the console so the statement
// endpoints can serve it.
type Session struct {
	mu        sync.RWMutex
	accountID string
}

func (s *Session) Set(accountID string) {
	s.mu.Lock()
	s.accountID = accountID
	s.mu.Unlock()
}

func (s *Session) Clear() {
	s.Set("")
}

// Current returns the logged-in account ID, if any.
func (s *Session) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID, s.accountID != ""
}
