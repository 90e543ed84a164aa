package players

import (
	"fmt"
	"testing"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

func BenchmarkPlayersByCountry(b *testing.B) {
	items := make([]players.Player, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, players.New(fmt.Sprintf("Player %d", i), fmt.Sprintf("Nation %d", i%50), fmt.Sprintf("Club %d", i%100), nil))
	}
	svc := NewService(&stubPlayerStore{items: items})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.PlayersByCountry("nation 7")
	}
}
