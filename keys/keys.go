//go:generate go run go.uber.org/mock/mockgen -source=keys.go -destination=../mocks/mock_user_key_store.go -package=mocks
// Package keys manages asymmetric key material for rooms and users.
// It only generates, encodes, and stores keys; message cryptography is the
// callers' concern.
package keys

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"chat-vault/errors"

	"github.com/google/uuid"
)

const rsaBits = 2048

// Pair is a freshly generated room key pair. Both keys are DER encoded:
// PKIX for the public half, PKCS#8 for the private half. Room records the
// identity the pair was generated for; Armor reproduces it as PEM metadata.
type Pair struct {
	Room       string
	KeyID      string
	PublicKey  []byte
	PrivateKey []byte
}

// Generate produces a new RSA key pair for the named room. Each call yields
// distinct key material; once-per-room-lifetime is enforced by the room
// store, not here.
func Generate(roomName string) (Pair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaBits)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", errors.ErrKeyGeneration, err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", errors.ErrKeyGeneration, err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", errors.ErrKeyGeneration, err)
	}

	return Pair{
		Room:       roomName,
		KeyID:      uuid.New().String(),
		PublicKey:  pubDER,
		PrivateKey: privDER,
	}, nil
}

// Armor converts a DER public key to its transport-safe PEM form, binding
// the room identity as block headers. Presentation only; the stored
// representation stays DER.
func Armor(publicKeyDER []byte, roomName, keyID string) string {
	block := &pem.Block{
		Type: "PUBLIC KEY",
		Headers: map[string]string{
			"Room":   roomName,
			"Key-Id": keyID,
		},
		Bytes: publicKeyDER,
	}
	return string(pem.EncodeToMemory(block))
}

// UserKeyStore is the narrow persistence surface the manager needs for
// client-supplied user keys.
type UserKeyStore interface {
	SetPublicKey(username string, key []byte) error
	GetPublicKey(username string) ([]byte, error)
}

// Manager stores and retrieves per-user public keys. Keys are kept verbatim;
// structural validation, if any, is a caller concern.
type Manager struct {
	store UserKeyStore
}

func NewManager(store UserKeyStore) *Manager {
	return &Manager{store: store}
}

func (m *Manager) SetUserKey(username string, key []byte) error {
	return m.store.SetPublicKey(username, key)
}

func (m *Manager) UserKey(username string) ([]byte, error) {
	return m.store.GetPublicKey(username)
}
