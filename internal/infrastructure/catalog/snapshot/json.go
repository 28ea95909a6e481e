package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// JSONParser parses game records from a JSON array or a {"games": [...]} object.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the games.
func (p *JSONParser) Parse(r io.Reader) ([]entities.Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return nonNil(doc.Games), nil
	}

	var games []entities.Game
	if err := json.Unmarshal(trimmed, &games); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return nonNil(games), nil
}

func nonNil(games []entities.Game) []entities.Game {
	if games == nil {
		return []entities.Game{}
	}
	return games
}
