package internal

import (
	"forum/domain"
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("AUTH_SECRET", "secret")
	t.Setenv("ORDER_FIELD", "sequence")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("INFO", config.LogLevel)
	req.Equal(24*time.Hour, config.AuthTokenDuration)
	field, err := config.FeedOrder()
	req.NoError(err)
	req.Equal(domain.OrderBySequence, field)
}

func TestConfig_FeedOrder_Rejects_Unknown(t *testing.T) {
	req := require.New(t)
	_, err := Config{OrderField: "authorId"}.FeedOrder()
	req.Error(err)
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
}
