//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"forum/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const userPrefix = "user:"

type IUserRepository interface {
	CreateUser(email, displayName, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the repository representation of a forum account.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// CreateUser persists the user under its email and returns the new id.
// The password must already be hashed.
func (u UserRepository) CreateUser(email, displayName, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	record, err := structpb.NewStruct(map[string]any{
		"id":           newID,
		"email":        email,
		"displayName":  displayName,
		"passwordHash": hashedPassword,
		"roles":        []any{"user"},
		"createdAt":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("user record: %w", err)
	}
	data, err := proto.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userPrefix + email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

// GetUserByEmail returns badger.ErrKeyNotFound for unknown emails.
func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var record structpb.Struct

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return User{}, err
	}
	return toUser(&record), nil
}

func toUser(record *structpb.Struct) User {
	fields := record.GetFields()
	createdAt, _ := time.Parse(time.RFC3339, fields["createdAt"].GetStringValue())
	roles := lo.Map(fields["roles"].GetListValue().GetValues(), func(v *structpb.Value, _ int) string {
		return v.GetStringValue()
	})
	return User{
		ID:           fields["id"].GetStringValue(),
		Email:        fields["email"].GetStringValue(),
		DisplayName:  fields["displayName"].GetStringValue(),
		PasswordHash: fields["passwordHash"].GetStringValue(),
		Roles:        roles,
		CreatedAt:    createdAt,
	}
}
