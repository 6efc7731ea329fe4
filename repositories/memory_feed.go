package repositories

import (
	"context"
	"fmt"
	"forum/domain"
	"forum/errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type memoryRecord struct {
	message domain.Message
	seq     uint64
}

// MemoryFeedRepository keeps the feed in process memory. It follows the
// same ordering rules as FeedRepository: ties keep append order.
type MemoryFeedRepository struct {
	mu          sync.Mutex
	records     []memoryRecord
	nextSeq     uint64
	watchers    map[int]func()
	nextWatcher int
	appendErr   error
	scanErr     error
}

func NewMemoryFeedRepository() *MemoryFeedRepository {
	return &MemoryFeedRepository{watchers: make(map[int]func())}
}

// FailAppend makes every following Append return err. Nil restores it.
func (r *MemoryFeedRepository) FailAppend(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendErr = err
}

// FailScan makes every following Scan return err. Nil restores it.
func (r *MemoryFeedRepository) FailScan(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanErr = err
}

func (r *MemoryFeedRepository) Append(ctx context.Context, message domain.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	if r.appendErr != nil {
		r.mu.Unlock()
		return "", r.appendErr
	}
	message.ID = uuid.New().String()
	r.records = append(r.records, memoryRecord{message: message, seq: r.nextSeq})
	r.nextSeq++
	watchers := lo.Values(r.watchers)
	r.mu.Unlock()

	for _, notify := range watchers {
		notify()
	}
	return message.ID, nil
}

func (r *MemoryFeedRepository) Scan(ctx context.Context, field domain.OrderField, direction domain.Direction) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedOrderField, field)
	}
	r.mu.Lock()
	if r.scanErr != nil {
		r.mu.Unlock()
		return nil, r.scanErr
	}
	records := slices.Clone(r.records)
	r.mu.Unlock()

	if field == domain.OrderByCreatedAt {
		slices.SortStableFunc(records, func(a, b memoryRecord) int {
			return a.message.CreatedAt.Compare(b.message.CreatedAt)
		})
	}
	if direction == domain.Descending {
		slices.Reverse(records)
	}
	return lo.Map(records, func(item memoryRecord, _ int) domain.Message {
		return item.message
	}), nil
}

func (r *MemoryFeedRepository) Watch(ctx context.Context, ready func(), onChange func()) error {
	r.mu.Lock()
	id := r.nextWatcher
	r.nextWatcher++
	r.watchers[id] = onChange
	r.mu.Unlock()
	ready()

	<-ctx.Done()

	r.mu.Lock()
	delete(r.watchers, id)
	r.mu.Unlock()
	return nil
}
