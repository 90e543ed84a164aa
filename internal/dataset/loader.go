package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
)

// ErrEmptyPath is returned when no dataset path is configured.
var ErrEmptyPath = errors.New("dataset path required")

// Load reads the player dataset from a JSON file holding an array of objects.
func Load(path string) ([]players.Player, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return items, nil
}

// Decode parses a JSON array of player objects. Anything after the array
// besides whitespace is rejected.
func Decode(r io.Reader) ([]players.Player, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected JSON array, got %v", tok)
	}

	items := make([]players.Player, 0)
	for idx := 0; dec.More(); idx++ {
		var p players.Player
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		items = append(items, p)
	}

	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after dataset array")
	}
	return items, nil
}
