package auth

import (
	"forum/domain"
	"forum/errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newHub(t *testing.T) (*SessionHub, TokenIssuer) {
	t.Helper()
	tokens := NewTokenIssuer("hub-secret", time.Hour)
	return NewSessionHub(slog.Default(), tokens), tokens
}

func TestSessionHub_Subscribe_Receives_Current_State(t *testing.T) {
	req := require.New(t)
	hub, tokens := newHub(t)

	var received []*domain.Session
	unsubscribe := hub.Subscribe(func(s *domain.Session) {
		received = append(received, s)
	})
	defer unsubscribe()

	// Initial state is logged out
	req.Len(received, 1)
	req.Nil(received[0])

	token, err := tokens.GenerateToken("u1", "Alice", []string{"user"})
	req.NoError(err)
	session, err := hub.Login(token)
	req.NoError(err)
	req.Equal(domain.Session{ID: "u1", DisplayName: "Alice"}, session)

	hub.Logout()

	req.Len(received, 3)
	req.Equal(&session, received[1])
	req.Nil(received[2])
}

func TestSessionHub_Late_Subscriber_Sees_Login(t *testing.T) {
	req := require.New(t)
	hub, tokens := newHub(t)

	token, err := tokens.GenerateToken("u2", "Bob", nil)
	req.NoError(err)
	_, err = hub.Login(token)
	req.NoError(err)

	var got *domain.Session
	unsubscribe := hub.Subscribe(func(s *domain.Session) { got = s })
	defer unsubscribe()

	req.NotNil(got)
	req.Equal("Bob", got.DisplayName)
	req.Equal(got, hub.Current())
}

func TestSessionHub_Unsubscribe_Stops_Delivery(t *testing.T) {
	req := require.New(t)
	hub, tokens := newHub(t)

	calls := 0
	unsubscribe := hub.Subscribe(func(*domain.Session) { calls++ })
	unsubscribe()
	unsubscribe()

	token, err := tokens.GenerateToken("u1", "Alice", nil)
	req.NoError(err)
	_, err = hub.Login(token)
	req.NoError(err)

	req.Equal(1, calls)
}

func TestSessionHub_Invalid_Token_Keeps_State(t *testing.T) {
	req := require.New(t)
	hub, _ := newHub(t)

	_, err := hub.Login("garbage")
	req.ErrorIs(err, errors.ErrInvalidSession)
	req.Nil(hub.Current())

	// Signed with the right key but missing a display name
	token, err := NewTokenIssuer("hub-secret", time.Hour).GenerateToken("u1", "", nil)
	req.NoError(err)
	_, err = hub.Login(token)
	req.ErrorIs(err, errors.ErrInvalidSession)
	req.Nil(hub.Current())
}
