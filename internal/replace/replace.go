// Package replace implements the ordered filename substitution table.
//
// Rules are applied strictly in insertion order and each rule rewrites the
// output of the previous one, so a later rule may act on text a previous rule
// inserted. That ordering is contractual and must not be normalized away.
package replace

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"clipcut/internal/faults"
)

// Pair is a single substitution rule.
type Pair struct {
	Key   string
	Value string
}

// Map is an ordered substitution table. The zero value is an empty, usable
// map. Map values are immutable; editing operations return copies.
type Map struct {
	pairs []Pair
}

// New builds a Map from rules in the given order. Empty keys are rejected.
func New(pairs ...Pair) (Map, error) {
	for _, p := range pairs {
		if p.Key == "" {
			return Map{}, faults.Wrap(faults.ErrValidation, "replacement", "",
				fmt.Sprintf("mapping key cannot be empty (value %q)", p.Value), nil)
		}
	}
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	return Map{pairs: cp}, nil
}

// FromNode builds a Map from a YAML mapping node, preserving document order.
// Keys and values must both be strings and keys must be non-empty.
func FromNode(node *yaml.Node) (Map, error) {
	if node == nil {
		return Map{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return Map{}, faults.Wrap(faults.ErrValidation, "replacement", "",
			"expected a mapping of string to string", nil)
	}
	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		kn, vn := node.Content[i], node.Content[i+1]
		if kn.Kind != yaml.ScalarNode || vn.Kind != yaml.ScalarNode ||
			kn.Tag != "!!str" || vn.Tag != "!!str" {
			return Map{}, faults.Wrap(faults.ErrValidation, "replacement", "",
				fmt.Sprintf("bad mapping: %s: %s", kn.Value, vn.Value), nil)
		}
		pairs = append(pairs, Pair{Key: kn.Value, Value: vn.Value})
	}
	return New(pairs...)
}

// Apply runs every rule in insertion order against target, replacing all
// occurrences of the key before moving to the next rule.
func (m Map) Apply(target string) string {
	for _, p := range m.pairs {
		target = strings.ReplaceAll(target, p.Key, p.Value)
	}
	return target
}

// With returns a copy with key mapped to value. An existing key keeps its
// position; a new key is appended.
func (m Map) With(key, value string) (Map, error) {
	if key == "" {
		return Map{}, faults.Wrap(faults.ErrValidation, "replacement", "",
			fmt.Sprintf("mapping key cannot be empty (value %q)", value), nil)
	}
	pairs := make([]Pair, len(m.pairs))
	copy(pairs, m.pairs)
	for i := range pairs {
		if pairs[i].Key == key {
			pairs[i].Value = value
			return Map{pairs: pairs}, nil
		}
	}
	return Map{pairs: append(pairs, Pair{Key: key, Value: value})}, nil
}

// Pairs returns the rules in order. The slice is a copy.
func (m Map) Pairs() []Pair {
	cp := make([]Pair, len(m.pairs))
	copy(cp, m.pairs)
	return cp
}

// Len reports the number of rules.
func (m Map) Len() int { return len(m.pairs) }
