package session

import (
	"errors"
	"fmt"
	"strings"
)

// positioned is implemented by errors that point at a character offset.
type positioned interface {
	Position() int
	Message() string
}

// Diagnostic renders err for display under the line that caused it: the line
// itself, a caret under the offending character and the message with a
// 1-based column. Errors without a position render as a single line.
func Diagnostic(line string, err error) string {
	var p positioned
	if !errors.As(err, &p) {
		return fmt.Sprintf("Error: %v", err)
	}
	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", p.Position()))
	sb.WriteString("^\n")
	fmt.Fprintf(&sb, "Error (column %d): %s", p.Position()+1, p.Message())
	return sb.String()
}

// Column returns the 1-based column err points at, or 0 if it has none.
func Column(err error) int {
	var p positioned
	if !errors.As(err, &p) {
		return 0
	}
	return p.Position() + 1
}
