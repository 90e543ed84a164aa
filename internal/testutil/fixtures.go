package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

// SampleDatasetJSON is a small dataset with repeated countries and clubs.
const SampleDatasetJSON = `[
  {"Name":"Lionel Messi","Nationality":"Argentina","Club":"FC Barcelona","Age":29,"Preffered_Position":"RW"},
  {"Name":"Neymar","Nationality":"Brazil","Club":"FC Barcelona","Age":25,"Preffered_Position":"LW"},
  {"Name":"Sergio Agüero","Nationality":"Argentina","Club":"Manchester City","Age":28,"Preffered_Position":"ST"},
  {"Name":"Kevin De Bruyne","Nationality":"Belgium","Club":"Manchester City","Age":25,"Preffered_Position":"CAM"}
]`

// SamplePlayers decodes SampleDatasetJSON.
func SamplePlayers(t testing.TB) []players.Player {
	t.Helper()
	var items []players.Player
	if err := json.Unmarshal([]byte(SampleDatasetJSON), &items); err != nil {
		t.Fatalf("decode sample players: %v", err)
	}
	return items
}

// WriteDataset writes body to a temp file and returns its path.
func WriteDataset(t testing.TB, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}
