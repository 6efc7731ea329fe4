package services

import (
	"context"
	"fmt"
	"forum/contract"
	"forum/domain"
	"forum/errors"
	"forum/projection"
	"log/slog"
	"sync"
	"time"
)

type IFeedSynchronizer interface {
	Post(ctx context.Context, text string) error
	Load(ctx context.Context) (domain.FeedView, error)
	Session() (domain.Session, bool)
	View() domain.FeedView
}

// Censor rewrites text before it is appended.
type Censor interface {
	Censor(text string) (string, []string)
}

type FeedOption func(*FeedSynchronizer)

// WithClock replaces the clock stamping CreatedAt on post.
func WithClock(clock func() time.Time) FeedOption {
	return func(s *FeedSynchronizer) { s.clock = clock }
}

// WithOrderField selects the store key the feed is ordered by.
func WithOrderField(field domain.OrderField) FeedOption {
	return func(s *FeedSynchronizer) { s.orderField = field }
}

func WithCensor(censor Censor) FeedOption {
	return func(s *FeedSynchronizer) { s.censor = censor }
}

// FeedSynchronizer gates posts on the current session and builds the
// oldest-first view of the shared feed. One instance per client.
type FeedSynchronizer struct {
	log        *slog.Logger
	store      contract.IFeedStore
	clock      func() time.Time
	orderField domain.OrderField
	censor     Censor

	mu   sync.RWMutex
	auth domain.AuthState
	view domain.FeedView
	// loads numbers Load calls; applied is the newest one held in view.
	loads   uint64
	applied uint64

	lifecycle   sync.Mutex
	unsubscribe func()
}

func NewFeedSynchronizer(log *slog.Logger, store contract.IFeedStore, opts ...FeedOption) *FeedSynchronizer {
	s := &FeedSynchronizer{
		log:        log,
		store:      store,
		clock:      time.Now,
		orderField: domain.OrderByCreatedAt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach subscribes to the session source. Only the first call
// subscribes; Close releases the subscription.
func (s *FeedSynchronizer) Attach(source contract.ISessionSource) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.unsubscribe != nil {
		return
	}
	s.unsubscribe = source.Subscribe(func(session *domain.Session) {
		if session == nil {
			s.HandleAuthEvent(domain.Logout())
			return
		}
		s.HandleAuthEvent(domain.Login(*session))
	})
}

// Close unsubscribes from the session source. Safe to call many times.
func (s *FeedSynchronizer) Close() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *FeedSynchronizer) HandleAuthEvent(evt domain.AuthEvent) {
	s.mu.Lock()
	s.auth.Apply(evt)
	s.mu.Unlock()
	s.log.Debug("Auth state changed", "event", evt.Kind.String())
}

func (s *FeedSynchronizer) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Session()
}

// View returns the last successfully loaded view.
func (s *FeedSynchronizer) View() domain.FeedView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Post appends text as a message of the current session.
// Blank text is dropped without error and without touching the store.
func (s *FeedSynchronizer) Post(ctx context.Context, text string) error {
	session, ok := s.Session()
	if !ok {
		return errors.ErrUnauthenticated
	}
	text, ok = domain.NormalizeText(text)
	if !ok {
		s.log.Debug("Blank post ignored", "author_id", session.ID)
		return nil
	}
	if s.censor != nil {
		text, _ = s.censor.Censor(text)
	}

	message := domain.Message{
		AuthorID:          session.ID,
		AuthorDisplayName: session.DisplayName,
		Text:              text,
		CreatedAt:         s.clock(),
	}
	id, err := s.store.Append(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStoreFailure, err)
	}
	s.log.Debug("Message posted", "id", id, "author_id", session.ID, "at", message.CreatedAt)
	return nil
}

// Load reads the whole feed newest first and returns it oldest first.
// On failure the held view is left untouched. A load finishing after a
// later-started one keeps and returns the newer held view.
func (s *FeedSynchronizer) Load(ctx context.Context) (domain.FeedView, error) {
	s.mu.Lock()
	s.loads++
	ticket := s.loads
	s.mu.Unlock()

	timeline := projection.NewTimeline(domain.Descending)
	scanned, err := s.store.Scan(ctx, s.orderField, timeline.Direction)
	if err != nil {
		return domain.FeedView{}, fmt.Errorf("%w: %w", errors.ErrStoreFailure, err)
	}
	view := timeline.Project(scanned, s.clock())

	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket < s.applied {
		s.log.Debug("Stale feed load dropped", "load", ticket, "held", s.applied)
		return s.view, nil
	}
	s.applied = ticket
	s.view = view
	s.log.Debug("Feed loaded", "messages", view.Len(), "order", s.orderField)
	return view, nil
}

// Subscribe reloads the feed after every append seen by the store and
// hands the new view to onChange. It returns once the store watch is
// registered, so every later append is delivered. Failed reloads are
// logged and skipped. The returned function stops the subscription and
// waits for it to end.
func (s *FeedSynchronizer) Subscribe(ctx context.Context, onChange func(domain.FeedView)) (func(), error) {
	watcher, ok := s.store.(contract.IFeedWatcher)
	if !ok {
		return nil, errors.ErrWatchUnsupported
	}

	ctx, cancel := context.WithCancel(ctx)
	changes := make(chan struct{}, 1)
	ready := make(chan struct{})
	watchDone := make(chan error, 1)
	var readyOnce sync.Once
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := watcher.Watch(ctx, func() {
			readyOnce.Do(func() { close(ready) })
		}, func() {
			// Coalesce bursts: one pending reload covers them all
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		select {
		case <-ready:
			if err != nil {
				s.log.Error("Feed watch stopped", "error", err)
			}
		default:
		}
		watchDone <- err
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				view, err := s.Load(ctx)
				if err != nil {
					if ctx.Err() == nil {
						s.log.Warn("Feed reload failed", "error", err)
					}
					continue
				}
				onChange(view)
			}
		}
	}()

	select {
	case <-ready:
	case err := <-watchDone:
		if err == nil {
			err = ctx.Err()
		}
		if err == nil {
			err = fmt.Errorf("%w: watch ended before it was registered", errors.ErrStoreFailure)
		}
		cancel()
		wg.Wait()
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}, nil
}
