// Package domain contains core concepts of the forum feed.
// This file defines Sessions and the authentication state machine.
// No runtime, network, or UI logic should be added here.
package domain

// Session is an authenticated principal. Its lifecycle is owned by the
// authentication collaborator.
type Session struct {
	ID          string `validate:"required"`
	DisplayName string `validate:"required,max=64"`
}

type AuthEventKind int

const (
	LoggedIn AuthEventKind = iota + 1
	LoggedOut
)

func (k AuthEventKind) String() string {
	switch k {
	case LoggedIn:
		return "logged_in"
	case LoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// AuthEvent is one login or logout notification.
// Session is only meaningful for LoggedIn.
type AuthEvent struct {
	Kind    AuthEventKind
	Session Session
}

func Login(session Session) AuthEvent {
	return AuthEvent{Kind: LoggedIn, Session: session}
}

func Logout() AuthEvent {
	return AuthEvent{Kind: LoggedOut}
}

// AuthState is a two-state machine: Unauthenticated or
// Authenticated(session). The zero value is Unauthenticated.
type AuthState struct {
	session *Session
}

// Apply performs the transition described by the event.
// A login while authenticated replaces the session.
func (s *AuthState) Apply(evt AuthEvent) {
	switch evt.Kind {
	case LoggedIn:
		session := evt.Session
		s.session = &session
	case LoggedOut:
		s.session = nil
	}
}

func (s AuthState) Session() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s AuthState) Authenticated() bool {
	return s.session != nil
}
