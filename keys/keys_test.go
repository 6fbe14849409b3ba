package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"chat-vault/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGenerate(t *testing.T) {
	req := require.New(t)

	pair, err := Generate("general")
	req.NoError(err)
	req.NotEmpty(pair.KeyID)
	// The pair is bound to the room it was generated for.
	req.Equal("general", pair.Room)

	// Both halves must be well-formed DER of the expected strength.
	pub, err := x509.ParsePKIXPublicKey(pair.PublicKey)
	req.NoError(err)
	rsaPub, ok := pub.(*rsa.PublicKey)
	req.True(ok)
	req.GreaterOrEqual(rsaPub.N.BitLen(), 2048)

	priv, err := x509.ParsePKCS8PrivateKey(pair.PrivateKey)
	req.NoError(err)
	rsaPriv, ok := priv.(*rsa.PrivateKey)
	req.True(ok)
	req.Equal(rsaPub.N, rsaPriv.N)
}

func TestGenerate_DistinctMaterial(t *testing.T) {
	req := require.New(t)

	first, err := Generate("general")
	req.NoError(err)
	second, err := Generate("general")
	req.NoError(err)

	req.NotEqual(first.KeyID, second.KeyID)
	req.NotEqual(first.PublicKey, second.PublicKey)
	req.NotEqual(first.PrivateKey, second.PrivateKey)
}

func TestArmor(t *testing.T) {
	req := require.New(t)

	pair, err := Generate("general")
	req.NoError(err)

	armored := Armor(pair.PublicKey, pair.Room, pair.KeyID)

	block, rest := pem.Decode([]byte(armored))
	req.NotNil(block)
	req.Empty(rest)
	req.Equal("PUBLIC KEY", block.Type)
	req.Equal("general", block.Headers["Room"])
	req.Equal(pair.KeyID, block.Headers["Key-Id"])
	// Lossless: the armored body is exactly the stored DER.
	req.Equal(pair.PublicKey, block.Bytes)
}

func TestManager_UserKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockUserKeyStore(ctrl)
	manager := NewManager(store)

	t.Run("should store the supplied key verbatim", func(t *testing.T) {
		req := require.New(t)
		key := []byte{0x30, 0x82, 0x01, 0x0a}

		store.EXPECT().SetPublicKey("alice", key).Return(nil).Times(1)

		req.NoError(manager.SetUserKey("alice", key))
	})

	t.Run("should return the stored key unchanged", func(t *testing.T) {
		req := require.New(t)
		key := []byte{0xde, 0xad, 0xbe, 0xef}

		store.EXPECT().GetPublicKey("alice").Return(key, nil).Times(1)

		got, err := manager.UserKey("alice")
		req.NoError(err)
		req.Equal(key, got)
	})
}
