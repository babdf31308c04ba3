package env

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed definition name. Pos is the offset of
// the offending character within the name.
type ValidationError struct {
	Pos int
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name at %d: %s", e.Pos, e.Msg)
}

func (e *ValidationError) Position() int   { return e.Pos }
func (e *ValidationError) Message() string { return e.Msg }

// UnknownNameError reports a reference to a name that was never defined.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown name: %s", e.Name)
}

// CyclicDefinitionError reports a definition that refers back to itself.
// Path lists the names from the first repeated name back to itself.
type CyclicDefinitionError struct {
	Path []string
}

func (e *CyclicDefinitionError) Error() string {
	return fmt.Sprintf("cyclic definition: %s", strings.Join(e.Path, " -> "))
}
