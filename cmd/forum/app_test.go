package main

import (
	"bytes"
	"strings"
	"testing"

	"forum/errors"

	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTH_SECRET", "cli-secret")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("FORUM_TOKEN", "")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Register_Post_Feed(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	out, err := runCommand(t, "register", "-email", "alice@example.com", "-name", "Alice", "-password", "ComplexPass123!")
	req.NoError(err)
	aliceToken := strings.TrimSpace(out)
	req.NotEmpty(aliceToken)

	_, err = runCommand(t, "register", "-email", "bob@example.com", "-name", "Bob", "-password", "AnotherPass456?")
	req.NoError(err)
	out, err = runCommand(t, "login", "-email", "bob@example.com", "-password", "AnotherPass456?")
	req.NoError(err)
	bobToken := strings.TrimSpace(out)

	out, err = runCommand(t, "post", "-token", aliceToken, "hello", "everyone")
	req.NoError(err)
	req.Contains(out, "Alice")

	t.Setenv("FORUM_TOKEN", bobToken)
	_, err = runCommand(t, "post", "hi", "Alice")
	req.NoError(err)

	out, err = runCommand(t, "feed")
	req.NoError(err)
	req.Contains(out, "hello everyone")
	req.Contains(out, "hi Alice")
	req.Less(strings.Index(out, "hello everyone"), strings.Index(out, "hi Alice"))
}

func TestRun_Post_Without_Token(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	_, err := runCommand(t, "post", "anonymous")
	req.ErrorIs(err, errors.ErrUnauthenticated)

	out, err := runCommand(t, "feed")
	req.NoError(err)
	req.NotContains(out, "anonymous")
}

func TestRun_Login_Wrong_Password(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	_, err := runCommand(t, "register", "-email", "alice@example.com", "-name", "Alice", "-password", "ComplexPass123!")
	req.NoError(err)
	_, err = runCommand(t, "login", "-email", "alice@example.com", "-password", "WrongPass123!")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestRun_Censored_Words(t *testing.T) {
	req := require.New(t)
	setupEnv(t)
	t.Setenv("CENSORED_WORDS", "spam")

	out, err := runCommand(t, "register", "-email", "alice@example.com", "-name", "Alice", "-password", "ComplexPass123!")
	req.NoError(err)
	_, err = runCommand(t, "post", "-token", strings.TrimSpace(out), "buy", "spam")
	req.NoError(err)

	out, err = runCommand(t, "feed")
	req.NoError(err)
	req.Contains(out, "buy ****")
	req.NotContains(out, "spam")
}

func TestRun_Unknown_Command(t *testing.T) {
	req := require.New(t)
	setupEnv(t)

	_, err := runCommand(t, "delete")
	req.ErrorContains(err, "unknown command")

	_, err = runCommand(t)
	req.ErrorContains(err, "missing command")
}
