package store

import (
	"context"
	"time"

	"akademix/pkg/auth"
	"akademix/pkg/domain"
)

// CurrentUser returns the seeded user, or false if the fixtures carry none.
func (m *MemoryStore) CurrentUser() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

// IsLoggedIn reports the session flag.
func (m *MemoryStore) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsLoggedIn
}

// Login waits out the simulated latency and then checks the credentials
// against the single configured pair. A mismatch returns false and leaves the
// session untouched. Identical attempts in flight share one result.
//
// Cancelling ctx only stops this caller from waiting: it gets false, while
// the shared attempt still runs to completion.
func (m *MemoryStore) Login(ctx context.Context, email, password string) bool {
	m.log.Debug().Str("email", email).Msg("login attempt")
	ch := m.logins.DoChan(email+"\x00"+password, func() (interface{}, error) {
		return m.attemptLogin(email, password), nil
	})
	select {
	case res := <-ch:
		return res.Val.(bool)
	case <-ctx.Done():
		m.log.Debug().Err(ctx.Err()).Str("email", email).Msg("login wait abandoned")
		return false
	}
}

// LoginAsync runs Login on its own goroutine. The channel always receives
// exactly one value.
func (m *MemoryStore) LoginAsync(email, password string) <-chan bool {
	out := make(chan bool, 1)
	go func() {
		out <- m.Login(context.Background(), email, password)
	}()
	return out
}

func (m *MemoryStore) attemptLogin(email, password string) bool {
	if m.loginLatency > 0 {
		time.Sleep(m.loginLatency)
	}
	if email != m.loginEmail || !auth.CheckPassword(password, m.passwordHash) {
		m.log.Info().Str("email", email).Bool("success", false).Msg("login resolved")
		return false
	}

	m.mu.Lock()
	if m.user != nil {
		m.user.IsLoggedIn = true
	}
	m.mu.Unlock()

	m.log.Info().Str("email", email).Bool("success", true).Msg("login resolved")
	return true
}

// Logout clears the session flag. It is a no-op when nobody is logged in.
func (m *MemoryStore) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil || !m.user.IsLoggedIn {
		return
	}
	m.user.IsLoggedIn = false
	m.log.Info().Str("user_id", m.user.ID).Msg("logged out")
}
