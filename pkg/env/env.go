// Package env holds named definitions and expands references to them.
package env

import (
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/vic/lcalc/pkg/lambda"
)

// Environment maps definition names to terms as they were parsed. Entries
// can be overwritten but not removed. An Environment is not safe for
// concurrent use.
type Environment struct {
	defs map[string]lambda.Term
}

func New() *Environment {
	return &Environment{defs: make(map[string]lambda.Term)}
}

// ValidateName checks that name is non-empty, starts with an uppercase
// letter and contains only uppercase letters and digits.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Pos: 0, Msg: "name cannot be empty"}
	}
	for i, ch := range []rune(name) {
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
			if i == 0 {
				return &ValidationError{Pos: i, Msg: "name must start with an uppercase letter"}
			}
		default:
			return &ValidationError{Pos: i, Msg: fmt.Sprintf("invalid character %q in name", ch)}
		}
	}
	return nil
}

// Define stores t under name without expanding it. References inside t are
// resolved when the definition is used, so they may name later definitions.
func (e *Environment) Define(name string, t lambda.Term) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	e.defs[name] = t
	return nil
}

func (e *Environment) Lookup(name string) (lambda.Term, bool) {
	t, ok := e.defs[name]
	return t, ok
}

// Names returns the defined names in sorted order.
func (e *Environment) Names() []string {
	names := lo.Keys(e.defs)
	slices.Sort(names)
	return names
}

func (e *Environment) Len() int {
	return len(e.defs)
}

// Expand returns t with every Name replaced by the expansion of its
// definition. A definition that reaches itself is reported as a
// CyclicDefinitionError.
func (e *Environment) Expand(t lambda.Term) (lambda.Term, error) {
	return e.expand(t, nil)
}

func (e *Environment) expand(t lambda.Term, path []string) (lambda.Term, error) {
	switch n := t.(type) {
	case lambda.Name:
		if i := slices.Index(path, n.Ident); i >= 0 {
			cycle := append(slices.Clone(path[i:]), n.Ident)
			return nil, &CyclicDefinitionError{Path: cycle}
		}
		def, ok := e.defs[n.Ident]
		if !ok {
			return nil, &UnknownNameError{Name: n.Ident}
		}
		return e.expand(def, append(path, n.Ident))
	case lambda.App:
		fun, err := e.expand(n.Fun, path)
		if err != nil {
			return nil, err
		}
		arg, err := e.expand(n.Arg, path)
		if err != nil {
			return nil, err
		}
		return lambda.App{Fun: fun, Arg: arg}, nil
	case lambda.Abs:
		body, err := e.expand(n.Body, path)
		if err != nil {
			return nil, err
		}
		return lambda.Abs{Body: body}, nil
	default:
		return t, nil
	}
}
