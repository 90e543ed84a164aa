package players

import (
	"golang.org/x/text/cases"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

// Store defines the read contract the query service needs.
type Store interface {
	ListPlayers() []players.Player
}

// indexed pairs a player with its case-folded lookup fields.
type indexed struct {
	player      players.Player
	name        string
	nationality string
	club        string
}

// Service answers case-insensitive queries over an immutable dataset.
type Service struct {
	items []indexed
}

// NewService snapshots the store and folds every lookup field once.
func NewService(store Store) *Service {
	list := store.ListPlayers()
	caser := cases.Fold()
	items := make([]indexed, len(list))
	for i, p := range list {
		items[i] = indexed{
			player:      p,
			name:        caser.String(p.Name),
			nationality: caser.String(p.Nationality),
			club:        caser.String(p.Club),
		}
	}
	return &Service{items: items}
}

// Players returns every player in dataset order.
func (s *Service) Players() []players.Player {
	out := make([]players.Player, len(s.items))
	for i, it := range s.items {
		out[i] = it.player
	}
	return out
}

// PlayerByName returns the first player whose name matches.
func (s *Service) PlayerByName(name string) (players.Player, bool) {
	needle := fold(name)
	for _, it := range s.items {
		if it.name == needle {
			return it.player, true
		}
	}
	return players.Player{}, false
}

// PlayersByCountry returns all players of the given nationality.
func (s *Service) PlayersByCountry(country string) []players.Player {
	return s.filter(fold(country), func(it indexed) string { return it.nationality })
}

// PlayersByClub returns all players at the given club.
func (s *Service) PlayersByClub(club string) []players.Player {
	return s.filter(fold(club), func(it indexed) string { return it.club })
}

// Attributes lists the keys of the first player. Every record is assumed to
// share them.
func (s *Service) Attributes() []string {
	if len(s.items) == 0 {
		return []string{}
	}
	return s.items[0].player.Keys()
}

// Names lists every player name in dataset order.
func (s *Service) Names() []string {
	out := make([]string, len(s.items))
	for i, it := range s.items {
		out[i] = it.player.Name
	}
	return out
}

// Count returns the dataset size.
func (s *Service) Count() int {
	return len(s.items)
}

func (s *Service) filter(needle string, field func(indexed) string) []players.Player {
	out := make([]players.Player, 0)
	for _, it := range s.items {
		if field(it) == needle {
			out = append(out, it.player)
		}
	}
	return out
}

// fold case-folds input. Casers carry state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
