package repositories

import (
	"testing"

	"chat-vault/errors"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_InsertAndGet(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewUserRepository(db, testLogger())

	err := repo.Insert("alice", "$argon2id$fake-hash", "teal")
	req.NoError(err)

	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal("alice", user.Username)
	req.Equal("$argon2id$fake-hash", user.PasswordHash)
	req.Equal("teal", user.Color)
	req.False(user.Online)
	req.Empty(user.Rooms)
	req.Nil(user.PublicKey)
}

func TestUserRepository_NoDuplicateUsers(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewUserRepository(db, testLogger())

	req.NoError(repo.Insert("alice", "first-hash", "teal"))

	err := repo.Insert("alice", "second-hash", "red")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	// The losing insert must not touch the original record.
	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal("first-hash", user.PasswordHash)
	req.Equal("teal", user.Color)
}

func TestUserRepository_GetUser_Absent(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewUserRepository(db, testLogger())

	_, err := repo.GetUser("ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_Mutations(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewUserRepository(db, testLogger())

	req.NoError(repo.Insert("alice", "hash", "teal"))

	req.NoError(repo.UpdateColor("alice", "crimson"))
	req.NoError(repo.UpdateDisplayName("alice", "Alice A."))
	req.NoError(repo.SetOnline("alice", true))

	user, err := repo.GetUser("alice")
	req.NoError(err)
	req.Equal("crimson", user.Color)
	req.Equal("Alice A.", user.DisplayName)
	req.True(user.Online)
	// Mutations must not leak into unrelated fields.
	req.Equal("hash", user.PasswordHash)

	req.ErrorIs(repo.UpdateColor("ghost", "red"), errors.ErrUserNotFound)
	req.ErrorIs(repo.SetOnline("ghost", true), errors.ErrUserNotFound)
}

func TestUserRepository_PublicKey(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewUserRepository(db, testLogger())

	req.NoError(repo.Insert("alice", "hash", "teal"))

	key, err := repo.GetPublicKey("alice")
	req.NoError(err)
	req.Nil(key)

	supplied := []byte{0x01, 0x02, 0x03}
	req.NoError(repo.SetPublicKey("alice", supplied))

	key, err = repo.GetPublicKey("alice")
	req.NoError(err)
	req.Equal(supplied, key)

	_, err = repo.GetPublicKey("ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)
}
