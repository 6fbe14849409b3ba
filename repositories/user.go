//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"chat-vault/domain"
	"chat-vault/errors"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	Insert(username, passwordHash, color string) error
	GetUser(username string) (domain.User, error)
	UpdateColor(username, color string) error
	UpdateDisplayName(username, displayName string) error
	SetOnline(username string, online bool) error
	SetPublicKey(username string, key []byte) error
	GetPublicKey(username string) ([]byte, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{db: db, log: log}
}

// userRecord is the persisted shape of a user. The rooms set deliberately
// lives outside the record, as edge keys, so it never goes through a
// read-modify-write on a serialized container.
type userRecord struct {
	DisplayName  string `json:"display_name,omitempty"`
	PasswordHash string `json:"password_hash"`
	Color        string `json:"color"`
	Online       bool   `json:"online"`
	PublicKey    []byte `json:"public_key,omitempty"`
}

// Insert persists a new user with no rooms and offline presence. The
// existence check and the write share one transaction, so two concurrent
// inserts of the same username cannot both succeed.
func (u *UserRepository) Insert(username, passwordHash, color string) error {
	record := userRecord{
		PasswordHash: passwordHash,
		Color:        color,
	}

	err := u.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return setJSON(txn, key, record)
	})
	return conflictAsSentinel(err)
}

// GetUser returns the full record with the rooms set materialized from the
// user-major edge keys. Record and edges are read from the same snapshot.
func (u *UserRepository) GetUser(username string) (domain.User, error) {
	var record userRecord
	rooms := make(map[string]struct{})

	err := u.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, userKey(username), &record); err != nil {
			return err
		}
		rooms = scanSuffixes(txn, userEdgePrefix+username+":")
		return nil
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.User{}, errors.ErrUserNotFound
		}
		u.log.Warn("user read failed", "username", username, "error", err)
		return domain.User{}, fmt.Errorf("user read failed: %w", err)
	}

	return domain.User{
		Username:     username,
		DisplayName:  record.DisplayName,
		PasswordHash: record.PasswordHash,
		Color:        record.Color,
		Online:       record.Online,
		PublicKey:    record.PublicKey,
		Rooms:        rooms,
	}, nil
}

func (u *UserRepository) UpdateColor(username, color string) error {
	return u.mutate(username, func(record *userRecord) {
		record.Color = color
	})
}

func (u *UserRepository) UpdateDisplayName(username, displayName string) error {
	return u.mutate(username, func(record *userRecord) {
		record.DisplayName = displayName
	})
}

func (u *UserRepository) SetOnline(username string, online bool) error {
	return u.mutate(username, func(record *userRecord) {
		record.Online = online
	})
}

// SetPublicKey stores a client-supplied public key verbatim.
func (u *UserRepository) SetPublicKey(username string, key []byte) error {
	return u.mutate(username, func(record *userRecord) {
		record.PublicKey = key
	})
}

func (u *UserRepository) GetPublicKey(username string) ([]byte, error) {
	var record userRecord
	err := u.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(username), &record)
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("user read failed: %w", err)
	}
	return record.PublicKey, nil
}

// mutate applies a single-field change as one read-modify-write transaction.
func (u *UserRepository) mutate(username string, change func(*userRecord)) error {
	err := u.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		var record userRecord
		if err := getJSON(txn, key, &record); err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrUserNotFound
			}
			return err
		}
		change(&record)
		return setJSON(txn, key, record)
	})
	return conflictAsSentinel(err)
}
