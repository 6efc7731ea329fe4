package repositories

import (
	"bytes"
	"context"
	"fmt"
	"forum/domain"
	"forum/errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	feedMessagePrefix = "feed:msg:"
	feedIndexPrefix   = "feed:idx:"
	feedWatchPrefix   = "feed:watch:"
	feedSequenceKey   = "feed:seq"
	sequenceBandwidth = 100

	watchMarkerInterval = 10 * time.Millisecond
	watchMarkerTTL      = time.Minute
)

// Record field names shared with every store implementation.
const (
	FieldText              = "text"
	FieldCreatedAt         = "createdAt"
	FieldAuthorID          = "authorId"
	FieldAuthorDisplayName = "authorDisplayName"
)

// FeedRepository stores the feed in BadgerDB.
//
// Layout:
//
//	feed:msg:{id}                                 -> record
//	feed:idx:createdAt:{nanos 20 digits}:{seq 20} -> id
//	feed:idx:sequence:{seq 20}                    -> id
//	feed:watch:{uuid}                             -> empty, short lived
//
// Zero padding keeps lexicographic key order equal to numeric order, and
// the sequence suffix breaks createdAt ties in append order. createdAt
// nanos have their sign bit flipped so times before 1970 sort first.
type FeedRepository struct {
	db  *badger.DB
	log *slog.Logger
	seq *badger.Sequence
}

func NewFeedRepository(db *badger.DB, log *slog.Logger) (*FeedRepository, error) {
	seq, err := db.GetSequence([]byte(feedSequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("feed sequence: %w", err)
	}
	return &FeedRepository{db: db, log: log, seq: seq}, nil
}

// Close releases the leased sequence range. The db stays open.
func (r *FeedRepository) Close() error {
	return r.seq.Release()
}

// Append writes the record and both index entries in one transaction.
func (r *FeedRepository) Append(ctx context.Context, message domain.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	seq, err := r.seq.Next()
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}
	value, err := encodeRecord(message)
	if err != nil {
		return "", err
	}
	id := uuid.New().String()
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(id), value); err != nil {
			return err
		}
		if err := txn.Set(createdAtIndexKey(message.CreatedAt, seq), []byte(id)); err != nil {
			return err
		}
		return txn.Set(sequenceIndexKey(seq), []byte(id))
	})
	if err != nil {
		return "", err
	}
	r.log.Debug("Feed record appended", "id", id, "seq", seq)
	return id, nil
}

// Scan walks the index of the requested field. Descending scans seek past
// the end of the prefix and iterate backwards.
func (r *FeedRepository) Scan(ctx context.Context, field domain.OrderField, direction domain.Direction) ([]domain.Message, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedOrderField, field)
	}
	prefix := []byte(feedIndexPrefix + string(field) + ":")
	var messages []domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		options.Reverse = direction == domain.Descending
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := prefix
		if options.Reverse {
			seekKey = append(append([]byte{}, prefix...), 0xFF)
		}
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			message, err := getMessage(txn, string(id))
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Feed scanned", "field", field, "direction", direction.String(), "count", len(messages))
	return messages, nil
}

// Watch subscribes to record writes until ctx is done.
//
// Badger registers a subscriber inside Subscribe and offers no hook for
// it, so a marker key is written until the subscription sees it. The
// first sighting proves registration and triggers ready.
func (r *FeedRepository) Watch(ctx context.Context, ready func(), onChange func()) error {
	marker := []byte(feedWatchPrefix + uuid.New().String())
	registered := make(chan struct{})
	var once sync.Once

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.announce(watchCtx, marker, registered)
	}()

	matches := []pb.Match{{Prefix: []byte(feedMessagePrefix)}, {Prefix: marker}}
	err := r.db.Subscribe(watchCtx, func(kv *badger.KVList) error {
		changed := false
		for _, item := range kv.GetKv() {
			if bytes.Equal(item.GetKey(), marker) {
				once.Do(func() {
					close(registered)
					ready()
				})
				continue
			}
			changed = true
		}
		if changed {
			onChange()
		}
		return nil
	}, matches)
	cancel()
	wg.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// announce writes the watch marker until the subscription reports it or
// ctx ends, then removes it.
func (r *FeedRepository) announce(ctx context.Context, marker []byte, registered <-chan struct{}) {
	ticker := time.NewTicker(watchMarkerInterval)
	defer ticker.Stop()
	defer func() {
		if err := r.db.Update(func(txn *badger.Txn) error { return txn.Delete(marker) }); err != nil {
			r.log.Debug("Watch marker not removed", "error", err)
		}
	}()
	for {
		err := r.db.Update(func(txn *badger.Txn) error {
			return txn.SetEntry(badger.NewEntry(marker, []byte{}).WithTTL(watchMarkerTTL))
		})
		if err != nil {
			r.log.Warn("Watch marker write failed", "error", err)
		}
		select {
		case <-registered:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func getMessage(txn *badger.Txn, id string) (domain.Message, error) {
	item, err := txn.Get(messageKey(id))
	if err != nil {
		return domain.Message{}, fmt.Errorf("record %s: %w", id, err)
	}
	var message domain.Message
	err = item.Value(func(value []byte) error {
		message, err = DecodeRecord(value)
		return err
	})
	if err != nil {
		return domain.Message{}, err
	}
	message.ID = id
	return message, nil
}

func messageKey(id string) []byte {
	return []byte(feedMessagePrefix + id)
}

func createdAtIndexKey(at time.Time, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d:%020d", feedIndexPrefix, domain.OrderByCreatedAt, orderedNanos(at), seq))
}

// orderedNanos maps UnixNano onto uint64 keeping signed order.
func orderedNanos(at time.Time) uint64 {
	return uint64(at.UnixNano()) ^ (1 << 63)
}

func sequenceIndexKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", feedIndexPrefix, domain.OrderBySequence, seq))
}

func encodeRecord(message domain.Message) ([]byte, error) {
	record, err := structpb.NewStruct(map[string]any{
		FieldText:              message.Text,
		FieldCreatedAt:         message.CreatedAt.UTC().Format(time.RFC3339Nano),
		FieldAuthorID:          message.AuthorID,
		FieldAuthorDisplayName: message.AuthorDisplayName,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(record)
}

// DecodeRecord reads a feed:msg value. The ID is not part of the value.
func DecodeRecord(value []byte) (domain.Message, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(value, &record); err != nil {
		return domain.Message{}, err
	}
	fields := record.GetFields()
	createdAt, err := time.Parse(time.RFC3339Nano, fields[FieldCreatedAt].GetStringValue())
	if err != nil {
		return domain.Message{}, fmt.Errorf("createdAt: %w", err)
	}
	return domain.Message{
		AuthorID:          fields[FieldAuthorID].GetStringValue(),
		AuthorDisplayName: fields[FieldAuthorDisplayName].GetStringValue(),
		Text:              fields[FieldText].GetStringValue(),
		CreatedAt:         createdAt,
	}, nil
}
