package internal

import (
	"fmt"
	"forum/domain"
	"time"
)

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	OrderField        string        `env:"ORDER_FIELD,default=createdAt"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	Token             string        `env:"FORUM_TOKEN"`
}

// FeedOrder returns the configured order key of the feed.
func (c Config) FeedOrder() (domain.OrderField, error) {
	field := domain.OrderField(c.OrderField)
	if !field.Valid() {
		return "", fmt.Errorf("ORDER_FIELD must be %q or %q, got %q",
			domain.OrderByCreatedAt, domain.OrderBySequence, c.OrderField)
	}
	return field, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
