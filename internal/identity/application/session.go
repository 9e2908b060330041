package application

import (
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/meetdesk/internal/identity/domain"
)

// CredentialVerifier checks a username and password pair.
type CredentialVerifier interface {
	VerifyCredentials(username, password string) bool
}

// Session tracks the identity the current process acts as.
type Session struct {
	verifier CredentialVerifier
	logger   *slog.Logger

	mu      sync.RWMutex
	current string
}

// NewSession creates a logged-out session.
func NewSession(verifier CredentialVerifier, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{verifier: verifier, logger: logger}
}

// Login switches the session to username when the credentials verify.
// A failed login leaves the current identity unchanged.
func (s *Session) Login(username, password string) error {
	if username == "" || password == "" {
		return domain.ErrEmptyCredentials
	}
	if !s.verifier.VerifyCredentials(username, password) {
		s.logger.Warn("login rejected", "username", username)
		return domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = username
	s.mu.Unlock()

	s.logger.Info("logged in", "username", username)
	return nil
}

// Logout clears the current identity.
func (s *Session) Logout() {
	s.mu.Lock()
	previous := s.current
	s.current = ""
	s.mu.Unlock()

	if previous != "" {
		s.logger.Info("logged out", "username", previous)
	}
}

// Current returns the logged in username.
func (s *Session) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != ""
}
