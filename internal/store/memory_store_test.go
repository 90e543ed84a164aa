package store

import (
	"testing"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

func TestMemoryStoreListPreservesOrder(t *testing.T) {
	s := NewMemoryStore([]players.Player{
		players.New("A", "X", "C1", nil),
		players.New("B", "Y", "C2", nil),
	})

	list := s.ListPlayers()
	if len(list) != 2 || s.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", len(list))
	}
	if list[0].Name != "A" || list[1].Name != "B" {
		t.Fatalf("unexpected order %s, %s", list[0].Name, list[1].Name)
	}
}

func TestMemoryStoreCopiesInput(t *testing.T) {
	items := []players.Player{players.New("original", "X", "C", nil)}
	s := NewMemoryStore(items)

	items[0].Name = "mutated"

	if got := s.ListPlayers()[0].Name; got != "original" {
		t.Fatalf("expected store to be isolated from caller slice, got %s", got)
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore([]players.Player{players.New("copy", "X", "C", nil)})

	list := s.ListPlayers()
	list[0].Name = "mutated"

	if got := s.ListPlayers()[0].Name; got != "copy" {
		t.Fatalf("expected store to remain unchanged, got %s", got)
	}
}

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore(nil)
	list := s.ListPlayers()
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}
