// Package domain contains core records of the chat persistence layer.
// No storage, network, or UI logic should be added here.
package domain

// User is a registered account. The Rooms set is mutated only through the
// membership coordinator; every other field is owned by the user store.
type User struct {
	Username     string
	DisplayName  string
	PasswordHash string
	Color        string
	Online       bool
	// PublicKey is a client-supplied asymmetric public key, stored verbatim.
	PublicKey []byte
	// Rooms holds the names of every room the user currently belongs to.
	Rooms map[string]struct{}
}

// InRoom reports whether the user currently belongs to the named room.
func (u User) InRoom(room string) bool {
	_, ok := u.Rooms[room]
	return ok
}
