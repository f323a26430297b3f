package workload

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Variant selects the envelope container.
type Variant string

const (
	VariantDynamic   Variant = "dynamic"
	VariantMonotonic Variant = "monotonic"
	VariantStatic    Variant = "static"
)

// Variants lists every supported variant in display order.
var Variants = []Variant{VariantDynamic, VariantMonotonic, VariantStatic}

// Numeric selects the instantiation type: int64 or float64.
type Numeric string

const (
	NumericInt   Numeric = "int"
	NumericFloat Numeric = "float"
)

// Scalar is a number kept as its decimal text. It encodes as an untagged
// YAML int or float so generated files stay free of quotes.
type Scalar string

// UnmarshalYAML accepts any scalar node.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number: %w", node.Line, ErrBadNumber)
	}
	*s = Scalar(node.Value)

	return nil
}

// MarshalYAML emits the text as an int or float scalar.
func (s Scalar) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if _, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		tag = "!!int"
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(s)}, nil
}

// Pair is one line as [slope, intercept].
type Pair [2]Scalar

// Workload is the YAML document consumed by Run and Check.
type Workload struct {
	Variant Variant  `yaml:"variant"`
	Numeric Numeric  `yaml:"numeric"`
	Strict  bool     `yaml:"strict,omitempty"`
	Lines   []Pair   `yaml:"lines,flow"`
	Queries []Scalar `yaml:"queries,flow"`
}

// Answer is the envelope's value at one query position.
type Answer struct {
	X   string `json:"x"`
	Max string `json:"max"`
}

// Result summarizes one Run.
type Result struct {
	Variant  Variant  `json:"variant"`
	Numeric  Numeric  `json:"numeric"`
	Inserted int      `json:"inserted"`
	Retained int      `json:"retained"`
	Answers  []Answer `json:"answers"`
}
