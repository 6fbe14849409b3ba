package repositories

import (
	"encoding/json"
	"fmt"

	"chat-vault/errors"

	"github.com/dgraph-io/badger/v4"
)

// Key schema. Membership is stored as normalized edge keys, one per lookup
// direction, instead of serialized sets inside the records. Joining and
// leaving then mutate independent keys, so concurrent edits to one room's
// member set cannot overwrite each other.
//
//	user:<username>                 JSON user record
//	room:<name>                     JSON room record (name already lowercase)
//	edge:room:<room>:<username>     membership edge, room-major
//	edge:user:<username>:<room>     membership edge, user-major
//
// Usernames and room names are validated to [A-Za-z0-9_-], which keeps the
// ':' separators unambiguous.
const (
	userKeyPrefix  = "user:"
	roomKeyPrefix  = "room:"
	roomEdgePrefix = "edge:room:"
	userEdgePrefix = "edge:user:"
)

func userKey(username string) []byte {
	return []byte(userKeyPrefix + username)
}

func roomKey(name string) []byte {
	return []byte(roomKeyPrefix + name)
}

func roomEdgeKey(room, username string) []byte {
	return []byte(roomEdgePrefix + room + ":" + username)
}

func userEdgeKey(username, room string) []byte {
	return []byte(userEdgePrefix + username + ":" + room)
}

// getJSON reads and decodes a record inside the given transaction.
func getJSON(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// setJSON encodes and writes a record inside the given transaction.
func setJSON(txn *badger.Txn, key []byte, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, data)
}

// scanSuffixes collects the remainder of every key under prefix, inside the
// same transaction snapshot as the caller's record read.
func scanSuffixes(txn *badger.Txn, prefix string) map[string]struct{} {
	out := make(map[string]struct{})
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false // edges carry no payload
	it := txn.NewIterator(options)
	defer it.Close()

	prefixBytes := []byte(prefix)
	for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
		out[string(it.Item().Key()[len(prefix):])] = struct{}{}
	}
	return out
}

// conflictAsSentinel maps Badger's optimistic-concurrency abort to the
// taxonomy sentinel. Everything else passes through unchanged.
func conflictAsSentinel(err error) error {
	if err == badger.ErrConflict {
		return errors.ErrTransactionConflict
	}
	return err
}
