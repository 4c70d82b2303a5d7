package views

import (
	"fmt"

	"gopkg.in/yaml.v3"

	model "datavisor/internal/domain/models/format"
)

// Descriptor describes one display tab.
type Descriptor struct {
	// ID is the map key in the YAML file (set during unmarshaling)
	ID model.View `yaml:"-" json:"id"`

	Label       string       `yaml:"label" json:"label"`
	Icon        string       `yaml:"icon" json:"icon"`
	Description string       `yaml:"description" json:"description"`
	DefaultFor  []model.Kind `yaml:"default_for" json:"default_for"`

	// Lexer is a chroma lexer name; empty means guess from content
	Lexer string `yaml:"lexer" json:"lexer,omitempty"`
}

// Catalogue is the parsed view file.
type Catalogue struct {
	Views []Descriptor `yaml:"-" json:"views"` // Ordered slice, populated by custom unmarshaler
}

// UnmarshalYAML keeps the views in file order.
func (c *Catalogue) UnmarshalYAML(node *yaml.Node) error {
	var byID struct {
		Views map[string]Descriptor `yaml:"views"`
	}
	if err := node.Decode(&byID); err != nil {
		return err
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "views" {
			continue
		}
		viewsNode := node.Content[i+1]
		if viewsNode.Kind != yaml.MappingNode {
			return fmt.Errorf("views: expected a mapping, got line %d", viewsNode.Line)
		}
		// viewsNode.Content alternates: key, value, key, value...
		for j := 0; j+1 < len(viewsNode.Content); j += 2 {
			id := viewsNode.Content[j].Value
			d, ok := byID.Views[id]
			if !ok {
				continue
			}
			d.ID = model.View(id)
			c.Views = append(c.Views, d)
		}
		break
	}
	return nil
}
