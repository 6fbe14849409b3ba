package repositories

import (
	"crypto/x509"
	"encoding/pem"
	"testing"

	"chat-vault/errors"

	"github.com/stretchr/testify/require"
)

func TestRoomRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	err := repo.CreateRoom("General", "the default room")
	req.NoError(err)

	// Lookups are case-insensitive: the stored name is lowercase.
	room, err := repo.GetRoom("general")
	req.NoError(err)
	req.Equal("general", room.Name)
	req.Equal("the default room", room.Description)
	req.Empty(room.Members)
	req.NotEmpty(room.PublicKey)
	req.NotEmpty(room.PrivateKey)

	// The armored form is a valid PEM rendering of the stored DER.
	block, _ := pem.Decode([]byte(room.ArmoredPublicKey))
	req.NotNil(block)
	req.Equal(room.PublicKey, block.Bytes)
	_, err = x509.ParsePKIXPublicKey(block.Bytes)
	req.NoError(err)
}

func TestRoomRepository_RoomExists_CaseInsensitive(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	req.False(repo.RoomExists("general"))

	req.NoError(repo.CreateRoom("general", ""))

	req.True(repo.RoomExists("general"))
	req.True(repo.RoomExists("GENERAL"))
	req.True(repo.RoomExists("General"))
}

func TestRoomRepository_RoomExists_FailClosedOnFault(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	req.NoError(repo.CreateRoom("general", ""))
	req.False(repo.RoomExists("other"))

	// Once the store faults, the check must assume existence: reporting
	// "absent" on uncertainty would let a duplicate create slip through.
	req.NoError(db.Close())
	req.True(repo.RoomExists("general"))
	req.True(repo.RoomExists("never-created"))
}

func TestRoomRepository_KeyImmutability(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	req.NoError(repo.CreateRoom("general", "first"))
	created, err := repo.GetRoom("general")
	req.NoError(err)

	// A second create loses and must leave the original pair untouched.
	err = repo.CreateRoom("General", "second")
	req.ErrorIs(err, errors.ErrRoomAlreadyExists)

	after, err := repo.GetRoom("general")
	req.NoError(err)
	req.Equal(created.PublicKey, after.PublicKey)
	req.Equal(created.PrivateKey, after.PrivateKey)
	req.Equal("first", after.Description)
}

func TestRoomRepository_GetRoom_Absent(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	_, err := repo.GetRoom("nowhere")
	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRoomRepository_RejectsUnsafeNames(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewRoomRepository(db, testLogger())

	req.ErrorIs(repo.CreateRoom("bad:name", ""), errors.ErrInvalidRoomName)
	req.ErrorIs(repo.CreateRoom("", ""), errors.ErrInvalidRoomName)
}
