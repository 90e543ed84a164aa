package store

import (
	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

// MemoryStore holds the loaded dataset in memory. It is built once and never
// mutated, so reads need no locking.
type MemoryStore struct {
	players []players.Player
}

// NewMemoryStore constructs a MemoryStore from a copy of items.
func NewMemoryStore(items []players.Player) *MemoryStore {
	return &MemoryStore{
		players: append([]players.Player(nil), items...),
	}
}

// ListPlayers returns a copy of the dataset in load order.
func (s *MemoryStore) ListPlayers() []players.Player {
	return append(make([]players.Player, 0, len(s.players)), s.players...)
}

// Len reports the number of players held.
func (s *MemoryStore) Len() int {
	return len(s.players)
}
