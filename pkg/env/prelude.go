package env

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/vic/lcalc/pkg/lambda"
)

//go:embed prelude.yaml
var preludeYAML []byte

// Definition is one entry of a definitions file.
type Definition struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`
}

// ReadDefinitions decodes a YAML list of definitions.
func ReadDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}
	return defs, nil
}

// LoadDefinitions parses each definition read from r and stores it in e,
// in file order. It stops at the first invalid entry.
func LoadDefinitions(e *Environment, r io.Reader) error {
	defs, err := ReadDefinitions(r)
	if err != nil {
		return err
	}
	for _, d := range defs {
		term, err := lambda.Parse(d.Expr)
		if err != nil {
			return fmt.Errorf("definition %s: %w", d.Name, err)
		}
		if err := e.Define(d.Name, term); err != nil {
			return fmt.Errorf("definition %s: %w", d.Name, err)
		}
	}
	return nil
}

// Prelude returns the built-in definitions.
func Prelude() []Definition {
	defs, err := ReadDefinitions(bytes.NewReader(preludeYAML))
	if err != nil {
		panic(err)
	}
	return defs
}

// PreludeNames returns the names of the built-in definitions in file order.
func PreludeNames() []string {
	return lo.Map(Prelude(), func(d Definition, _ int) string {
		return d.Name
	})
}

// LoadPrelude stores the built-in definitions in e.
func LoadPrelude(e *Environment) error {
	return LoadDefinitions(e, bytes.NewReader(preludeYAML))
}
