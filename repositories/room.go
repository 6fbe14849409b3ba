//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"chat-vault/auth"
	"chat-vault/domain"
	"chat-vault/errors"
	"chat-vault/keys"

	"github.com/dgraph-io/badger/v4"
)

type IRoomRepository interface {
	CreateRoom(name, description string) error
	GetRoom(name string) (domain.Room, error)
	RoomExists(name string) bool
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) *RoomRepository {
	return &RoomRepository{db: db, log: log}
}

// roomRecord is the persisted shape of a room. Key material is DER; the
// members set lives outside the record, as edge keys.
type roomRecord struct {
	Description string `json:"description"`
	KeyID       string `json:"key_id"`
	PublicKey   []byte `json:"public_key"`
	PrivateKey  []byte `json:"private_key"`
}

// CreateRoom generates a key pair and persists a new room with no members.
// The pair is generated before the transaction; if the insert loses a race
// with a concurrent create, the fresh pair is discarded and the winner's
// pair stays — a room's keys never change once persisted.
func (r *RoomRepository) CreateRoom(name, description string) error {
	if err := auth.ValidateRoomName(name); err != nil {
		return err
	}
	name = normalizeRoomName(name)

	pair, err := keys.Generate(name)
	if err != nil {
		return err
	}
	record := roomRecord{
		Description: description,
		KeyID:       pair.KeyID,
		PublicKey:   pair.PublicKey,
		PrivateKey:  pair.PrivateKey,
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := roomKey(name)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrRoomAlreadyExists
		}
		return setJSON(txn, key, record)
	})
	return conflictAsSentinel(err)
}

// GetRoom returns the room with its member set materialized from the
// room-major edge keys and the public key additionally armored for
// presentation.
func (r *RoomRepository) GetRoom(name string) (domain.Room, error) {
	name = normalizeRoomName(name)

	var record roomRecord
	members := make(map[string]struct{})

	err := r.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, roomKey(name), &record); err != nil {
			return err
		}
		members = scanSuffixes(txn, roomEdgePrefix+name+":")
		return nil
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return domain.Room{}, errors.ErrRoomNotFound
		}
		r.log.Warn("room read failed", "room", name, "error", err)
		return domain.Room{}, fmt.Errorf("room read failed: %w", err)
	}

	return domain.Room{
		Name:             name,
		Description:      record.Description,
		PublicKey:        record.PublicKey,
		PrivateKey:       record.PrivateKey,
		ArmoredPublicKey: keys.Armor(record.PublicKey, name, record.KeyID),
		Members:          members,
	}, nil
}

// RoomExists reports whether the room is present, case-insensitively.
// On a storage fault it reports true: assuming existence blocks accidental
// duplicate creation, which is the safe direction here.
func (r *RoomRepository) RoomExists(name string) bool {
	name = normalizeRoomName(name)

	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(roomKey(name))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false
	}
	if err != nil {
		r.log.Warn("room existence check failed, assuming it exists", "room", name, "error", err)
	}
	return true
}

// normalizeRoomName maps any casing a caller passes to the stored form, so
// "General" and "general" are the same room.
func normalizeRoomName(name string) string {
	return strings.ToLower(name)
}
