package session

import (
	"fmt"
	"strings"

	"github.com/vic/lcalc/pkg/lambda"
)

// Kind distinguishes binding lines from expression lines.
type Kind int

const (
	KindExpression Kind = iota
	KindBinding
)

func (k Kind) String() string {
	switch k {
	case KindBinding:
		return "binding"
	default:
		return "expression"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "binding":
		*k = KindBinding
	case "expression":
		*k = KindExpression
	default:
		return fmt.Errorf("unknown result kind %q", text)
	}
	return nil
}

// Result is the outcome of one evaluated line. For a binding, Term is the
// stored definition; for an expression, its normal form.
type Result struct {
	Kind      Kind        `json:"kind"`
	Name      string      `json:"name,omitempty"`
	Term      lambda.Term `json:"-"`
	Text      string      `json:"text"`
	Numeral   uint32      `json:"numeral"`
	IsNumeral bool        `json:"is_numeral"`
	Steps     uint64      `json:"steps"`
	Cached    bool        `json:"cached"`
}

// Format renders the result the way the interactive driver displays it.
func (r *Result) Format() string {
	if r.Kind == KindBinding {
		return fmt.Sprintf("%s := %s", r.Name, r.Text)
	}
	var sb strings.Builder
	sb.WriteString(r.Text)
	sb.WriteByte('\n')
	if r.IsNumeral {
		fmt.Fprintf(&sb, "Church numeral: %d", r.Numeral)
	} else {
		sb.WriteString("not a Church numeral")
	}
	return sb.String()
}
