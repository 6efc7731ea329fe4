package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"forum/auth"
	"forum/domain"
	"forum/internal"
	"forum/moderation"
	"forum/repositories"
	"forum/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

type app struct {
	config   internal.Config
	log      *slog.Logger
	db       *badger.DB
	store    *repositories.FeedRepository
	hub      *auth.SessionHub
	auth     services.IAuthService
	feedSync *services.FeedSynchronizer
}

func newApp(config internal.Config) (*app, error) {
	log := logs.GetLoggerFromString(config.LogLevel)

	orderField, err := config.FeedOrder()
	if err != nil {
		return nil, err
	}
	opts := []services.FeedOption{services.WithOrderField(orderField)}
	if words := moderation.ParseWords(config.CensoredWords); len(words) > 0 {
		char, err := internal.CharacterRune(config.CharReplacement)
		if err != nil {
			return nil, err
		}
		moderator, err := moderation.NewModerator(words, char, log)
		if err != nil {
			return nil, fmt.Errorf("moderator: %w", err)
		}
		opts = append(opts, services.WithCensor(moderator))
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	store, err := repositories.NewFeedRepository(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
	hub := auth.NewSessionHub(log, tokens)
	feedSync := services.NewFeedSynchronizer(log, store, opts...)
	feedSync.Attach(hub)

	return &app{
		config:   config,
		log:      log,
		db:       db,
		store:    store,
		hub:      hub,
		auth:     services.NewAuthService(repositories.NewUserRepository(db), tokens),
		feedSync: feedSync,
	}, nil
}

func (a *app) close() {
	a.feedSync.Close()
	if err := a.store.Close(); err != nil {
		a.log.Warn("Releasing feed sequence failed", "error", err)
	}
	a.log.Debug("Closing BadgerDB...")
	_ = a.db.Close()
}

func (a *app) register(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "display name shown on posts")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, err := a.auth.Register(*email, *name, *password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func (a *app) login(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, err := a.auth.Login(*email, *password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}

func (a *app) post(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	token := fs.String("token", a.config.Token, "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Without a token the synchronizer stays unauthenticated and rejects the post
	if *token != "" {
		if _, err := a.hub.Login(*token); err != nil {
			return err
		}
	}
	if err := a.feedSync.Post(ctx, strings.Join(fs.Args(), " ")); err != nil {
		return err
	}
	session, _ := a.feedSync.Session()
	_, err := fmt.Fprintf(out, "posted as %s\n", session.DisplayName)
	return err
}

func (a *app) feed(ctx context.Context, out io.Writer) error {
	view, err := a.feedSync.Load(ctx)
	if err != nil {
		return err
	}
	renderFeed(out, view)
	return nil
}

// watch prints the feed, then every message not printed yet. A message
// with an older timestamp may land in the middle of the feed, so new
// messages are found by id rather than by position.
func (a *app) watch(ctx context.Context, out io.Writer) error {
	updates := make(chan domain.FeedView, 1)
	unsubscribe, err := a.feedSync.Subscribe(ctx, func(view domain.FeedView) {
		// Views only grow, keep the latest one
		select {
		case <-updates:
		default:
		}
		updates <- view
	})
	if err != nil {
		return err
	}
	defer unsubscribe()

	// Subscribed before the first load: nothing posted in between is lost
	if err := a.feed(ctx, out); err != nil {
		return err
	}
	seen := lo.SliceToMap(a.feedSync.View().Messages, func(m domain.Message) (string, struct{}) {
		return m.ID, struct{}{}
	})

	for {
		select {
		case <-ctx.Done():
			a.log.Info("Watch stopped")
			return nil
		case view := <-updates:
			fresh := lo.Filter(view.Messages, func(m domain.Message, _ int) bool {
				_, ok := seen[m.ID]
				return !ok
			})
			if len(fresh) == 0 {
				continue
			}
			for _, m := range fresh {
				seen[m.ID] = struct{}{}
			}
			renderFeed(out, domain.FeedView{Messages: fresh, LoadedAt: view.LoadedAt})
		}
	}
}
