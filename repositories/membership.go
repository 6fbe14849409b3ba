package repositories

import (
	"log/slog"

	"chat-vault/errors"

	"github.com/dgraph-io/badger/v4"
)

type IMembershipRepository interface {
	Join(username, roomName string) error
	Leave(username, roomName string) error
}

// MembershipRepository is the only writer of membership edges. Each
// operation runs as one transaction that checks both records and mutates
// both edge directions, so no reader can ever observe a half-written edge.
//
// Badger detects write conflicts against the keys a transaction has read;
// an operation computed from a stale snapshot is aborted and surfaces as
// ErrTransactionConflict with nothing committed. No retry happens here —
// retry policy belongs to the caller.
type MembershipRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMembershipRepository(db *badger.DB, log *slog.Logger) *MembershipRepository {
	return &MembershipRepository{db: db, log: log}
}

// Join adds the user↔room edge. Both user and room must exist; a duplicate
// join is a no-op success. Both edge directions commit together or not at
// all.
func (m *MembershipRepository) Join(username, roomName string) error {
	roomName = normalizeRoomName(roomName)
	err := m.db.Update(func(txn *badger.Txn) error {
		return m.join(txn, username, roomName)
	})
	if err == nil {
		m.log.Debug("membership edge added", "username", username, "room", roomName)
	}
	return conflictAsSentinel(err)
}

// Leave removes the user↔room edge from both directions. A missing edge is
// a no-op success; a missing user or room is not.
func (m *MembershipRepository) Leave(username, roomName string) error {
	roomName = normalizeRoomName(roomName)
	err := m.db.Update(func(txn *badger.Txn) error {
		return m.leave(txn, username, roomName)
	})
	if err == nil {
		m.log.Debug("membership edge removed", "username", username, "room", roomName)
	}
	return conflictAsSentinel(err)
}

func (m *MembershipRepository) join(txn *badger.Txn, username, roomName string) error {
	if err := m.checkEndpoints(txn, username, roomName); err != nil {
		return err
	}
	if err := txn.Set(userEdgeKey(username, roomName), nil); err != nil {
		return err
	}
	return txn.Set(roomEdgeKey(roomName, username), nil)
}

func (m *MembershipRepository) leave(txn *badger.Txn, username, roomName string) error {
	if err := m.checkEndpoints(txn, username, roomName); err != nil {
		return err
	}
	if err := txn.Delete(userEdgeKey(username, roomName)); err != nil {
		return err
	}
	return txn.Delete(roomEdgeKey(roomName, username))
}

// checkEndpoints verifies both records inside the transaction. Reading them
// here also enrolls them in conflict detection, so an edge mutation cannot
// commit against a snapshot where either endpoint changed underneath it.
func (m *MembershipRepository) checkEndpoints(txn *badger.Txn, username, roomName string) error {
	if _, err := txn.Get(userKey(username)); err != nil {
		if err == badger.ErrKeyNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}
	if _, err := txn.Get(roomKey(roomName)); err != nil {
		if err == badger.ErrKeyNotFound {
			return errors.ErrRoomNotFound
		}
		return err
	}
	return nil
}
