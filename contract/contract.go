//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"forum/domain"
)

// IFeedStore is the boundary to the shared append-only document
// collection. It stores and returns records; ordering policy lives in
// the synchronizer.
type IFeedStore interface {
	// Append persists one record and returns its store-assigned id.
	// The ID field of the given message is ignored.
	Append(ctx context.Context, message domain.Message) (string, error)
	// Scan returns every stored record sorted by field and direction.
	Scan(ctx context.Context, field domain.OrderField, direction domain.Direction) ([]domain.Message, error)
}

// IFeedWatcher is implemented by stores able to notify appends.
type IFeedWatcher interface {
	// Watch blocks until ctx is done, calling onChange after each append.
	// ready is called once, when appends made from then on are guaranteed
	// to reach onChange.
	Watch(ctx context.Context, ready func(), onChange func()) error
}

// ISessionSource publishes authentication state changes.
// A nil session means logged out.
type ISessionSource interface {
	Subscribe(onChange func(session *domain.Session)) (unsubscribe func())
}
