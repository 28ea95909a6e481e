package snapshot

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// YAMLParser parses game records from a YAML sequence or a mapping with a games key.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns the games.
func (p *YAMLParser) Parse(r io.Reader) ([]entities.Game, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return []entities.Game{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return nonNil(doc.Games), nil
	case yaml.SequenceNode:
		var games []entities.Game
		if err := node.Decode(&games); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return nonNil(games), nil
	default:
		return nil, errors.New("parsing YAML: expected a list of games or a games mapping")
	}
}
