package players

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Canonical keys used for lookups. The source data capitalises them.
const (
	KeyName        = "Name"
	KeyNationality = "Nationality"
	KeyClub        = "Club"
)

// Stats holds the open-ended attributes of a player in document order.
type Stats = orderedmap.OrderedMap[string, json.RawMessage]

// Player is one record of the dataset: the lookup fields plus every other
// attribute carried as raw JSON so values round-trip unchanged.
type Player struct {
	Name        string
	Nationality string
	Club        string
	Stats       *Stats

	// keys keeps the order of every key in the source object.
	keys []string
}

// New builds a player from the lookup fields and optional stats.
func New(name, nationality, club string, stats *Stats) Player {
	return Player{Name: name, Nationality: nationality, Club: club, Stats: stats}
}

// NewStats returns an empty ordered stats map.
func NewStats() *Stats {
	return orderedmap.New[string, json.RawMessage]()
}

// Keys returns the attribute names of the player in source order. Players
// built in code list the lookup fields first, then their stats.
func (p Player) Keys() []string {
	if p.keys != nil {
		return append([]string(nil), p.keys...)
	}
	keys := []string{KeyName, KeyNationality, KeyClub}
	if p.Stats != nil {
		for pair := p.Stats.Oldest(); pair != nil; pair = pair.Next() {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}

// Stat returns the raw JSON value of a non-lookup attribute.
func (p Player) Stat(key string) (json.RawMessage, bool) {
	if p.Stats == nil {
		return nil, false
	}
	return p.Stats.Get(key)
}

// UnmarshalJSON decodes a player object, keeping key order and raw values.
func (p *Player) UnmarshalJSON(data []byte) error {
	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, fields); err != nil {
		return err
	}

	out := Player{Stats: NewStats(), keys: make([]string, 0, fields.Len())}
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		out.keys = append(out.keys, pair.Key)

		var target *string
		switch pair.Key {
		case KeyName:
			target = &out.Name
		case KeyNationality:
			target = &out.Nationality
		case KeyClub:
			target = &out.Club
		default:
			out.Stats.Set(pair.Key, pair.Value)
			continue
		}
		if err := json.Unmarshal(pair.Value, target); err != nil {
			return fmt.Errorf("field %s: %w", pair.Key, err)
		}
	}

	*p = out
	return nil
}

// MarshalJSON writes the player back as a flat object in source key order.
func (p Player) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any]()
	for _, key := range p.Keys() {
		switch key {
		case KeyName:
			out.Set(key, p.Name)
		case KeyNationality:
			out.Set(key, p.Nationality)
		case KeyClub:
			out.Set(key, p.Club)
		default:
			if val, ok := p.Stat(key); ok {
				out.Set(key, val)
			}
		}
	}
	return json.Marshal(out)
}
