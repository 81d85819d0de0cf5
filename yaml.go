package oxford

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements [yaml.Marshaler]. The conjunction is written as its
// word, without the trailing space.
func (c Conjunction) MarshalYAML() (any, error) {
	return c.Word(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Only scalar nodes are accepted;
// a null node yields the empty conjunction.
func (c *Conjunction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar, got yaml node kind %d at line %d", ErrInvalidConjunction, node.Kind, node.Line)
	}
	if node.Tag == "!!null" {
		*c = Conjunction{}
		return nil
	}
	*c = Custom(node.Value)
	return nil
}
