package services

import (
	"log/slog"

	"chat-vault/repositories"

	"github.com/samber/lo"
)

type IPresenceService interface {
	Observers(username string) ([]string, error)
}

// PresenceService derives who can currently observe a user: the union of
// members across every room the user belongs to, the user included, since
// sharing a room implies mutual visibility.
type PresenceService struct {
	users repositories.IUserRepository
	rooms repositories.IRoomRepository
	log   *slog.Logger
}

func NewPresenceService(users repositories.IUserRepository, rooms repositories.IRoomRepository, log *slog.Logger) *PresenceService {
	return &PresenceService{users: users, rooms: rooms, log: log}
}

// Observers returns the observer set for the user, in no particular order.
// A room that fails to load is skipped rather than failing the whole
// computation: this feeds presence UI, where a partial answer beats none.
func (s *PresenceService) Observers(username string) ([]string, error) {
	user, err := s.users.GetUser(username)
	if err != nil {
		return nil, err
	}

	observers := []string{username}
	for roomName := range user.Rooms {
		room, err := s.rooms.GetRoom(roomName)
		if err != nil {
			s.log.Warn("skipping unreadable room", "room", roomName, "username", username, "error", err)
			continue
		}
		observers = append(observers, lo.Keys(room.Members)...)
	}

	return lo.Uniq(observers), nil
}
