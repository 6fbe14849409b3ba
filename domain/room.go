package domain

// Room is a named chat room. Names are stored lowercase; the Members set is
// mutated only through the membership coordinator. The key pair is generated
// once at creation and never regenerated.
type Room struct {
	Name        string
	Description string
	PublicKey   []byte
	PrivateKey  []byte
	// ArmoredPublicKey is the presentation form of PublicKey, derived on
	// read. It is never persisted.
	ArmoredPublicKey string
	Members          map[string]struct{}
}

// HasMember reports whether the named user currently belongs to the room.
func (r Room) HasMember(username string) bool {
	_, ok := r.Members[username]
	return ok
}
