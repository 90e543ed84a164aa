package testutil

import (
	appplayers "github.com/preston-bernstein/soccer-data-service/internal/app/players"
	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
	"github.com/preston-bernstein/soccer-data-service/internal/store"
)

// NewServiceWithPlayers builds a query service backed by an in-memory store.
func NewServiceWithPlayers(items []players.Player) *appplayers.Service {
	return appplayers.NewService(store.NewMemoryStore(items))
}
