package auth

import (
	"fmt"
	"forum/domain"
	"forum/errors"
	"log/slog"
	"sync"
)

// SessionHub owns the authentication state of one client and publishes
// every login and logout to its subscribers. New subscribers receive the
// current state immediately.
//
// Callbacks run on the caller of Login/Logout and must not call back
// into the hub.
type SessionHub struct {
	log    *slog.Logger
	tokens TokenIssuer

	deliver     sync.Mutex // serializes deliveries so subscribers see changes in order
	mu          sync.Mutex
	current     *domain.Session
	subscribers map[int]func(*domain.Session)
	nextID      int
}

func NewSessionHub(log *slog.Logger, tokens TokenIssuer) *SessionHub {
	return &SessionHub{
		log:         log,
		tokens:      tokens,
		subscribers: make(map[int]func(*domain.Session)),
	}
}

func (h *SessionHub) Subscribe(onChange func(session *domain.Session)) func() {
	h.deliver.Lock()
	defer h.deliver.Unlock()

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = onChange
	current := copySession(h.current)
	h.mu.Unlock()

	onChange(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
		})
	}
}

// Login validates the token and makes its principal the current session.
// An invalid token leaves the state unchanged.
func (h *SessionHub) Login(token string) (domain.Session, error) {
	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", errors.ErrInvalidSession, err)
	}
	session := domain.Session{ID: claims.UserID, DisplayName: claims.DisplayName}
	if err = ValidateSession(session); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", errors.ErrInvalidSession, err)
	}
	h.publish(&session)
	h.log.Debug("Session opened", "user_id", session.ID)
	return session, nil
}

func (h *SessionHub) Logout() {
	h.publish(nil)
	h.log.Debug("Session closed")
}

// Current returns the current session, nil when logged out.
func (h *SessionHub) Current() *domain.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return copySession(h.current)
}

func (h *SessionHub) publish(session *domain.Session) {
	h.deliver.Lock()
	defer h.deliver.Unlock()

	h.mu.Lock()
	h.current = copySession(session)
	subscribers := make([]func(*domain.Session), 0, len(h.subscribers))
	for _, s := range h.subscribers {
		subscribers = append(subscribers, s)
	}
	h.mu.Unlock()

	for _, s := range subscribers {
		s(copySession(session))
	}
}

func copySession(session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}
	c := *session
	return &c
}
