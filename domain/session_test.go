package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthState_Transitions(t *testing.T) {
	req := require.New(t)
	var state AuthState

	_, ok := state.Session()
	req.False(ok)
	req.False(state.Authenticated())

	alice := Session{ID: "u1", DisplayName: "Alice"}
	state.Apply(Login(alice))
	session, ok := state.Session()
	req.True(ok)
	req.Equal(alice, session)

	bob := Session{ID: "u2", DisplayName: "Bob"}
	state.Apply(Login(bob))
	session, _ = state.Session()
	req.Equal(bob, session)

	state.Apply(Logout())
	req.False(state.Authenticated())

	// Logout while already logged out stays unauthenticated
	state.Apply(Logout())
	req.False(state.Authenticated())
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain", "hello", "hello", true},
		{"surrounding spaces", "  hello world \n", "hello world", true},
		{"empty", "", "", false},
		{"only whitespace", " \t\n ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, ok := NormalizeText(tt.input)
			req.Equal(tt.want, got)
			req.Equal(tt.ok, ok)
		})
	}
}

func TestFeedView_Last(t *testing.T) {
	req := require.New(t)
	var view FeedView
	_, ok := view.Last()
	req.False(ok)

	view.Messages = []Message{{Text: "first"}, {Text: "second"}}
	last, ok := view.Last()
	req.True(ok)
	req.Equal("second", last.Text)
	req.Equal(2, view.Len())
}
