package session

import (
	"errors"
	"io"
	"testing"

	"github.com/oarkflow/log"

	"github.com/vic/lcalc/pkg/env"
	"github.com/vic/lcalc/pkg/lambda"
	"github.com/vic/lcalc/pkg/reduce"
)

func quietLogger() *log.Logger {
	return &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return s
}

func mustEval(t *testing.T, s *Session, line string) *Result {
	t.Helper()
	res, err := s.Eval(line)
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", line, err)
	}
	return res
}

func TestEvalIdentityApplication(t *testing.T) {
	res := mustEval(t, newSession(t), `(\x.x)a`)
	if res.Kind != KindExpression || res.Text != "a" {
		t.Errorf("expected expression a, got %s %q", res.Kind, res.Text)
	}
	if res.IsNumeral {
		t.Errorf("expected non-numeral")
	}
	if res.Format() != "a\nnot a Church numeral" {
		t.Errorf("unexpected format %q", res.Format())
	}
}

func TestEvalChurchTwo(t *testing.T) {
	res := mustEval(t, newSession(t), `\f.\x.f(f x)`)
	if !res.IsNumeral || res.Numeral != 2 {
		t.Errorf("expected numeral 2, got %d %v", res.Numeral, res.IsNumeral)
	}
	if res.Format() != "\\a.\\b.a (a b)\nChurch numeral: 2" {
		t.Errorf("unexpected format %q", res.Format())
	}
}

func TestEvalBindingThenUse(t *testing.T) {
	s := newSession(t)

	bound := mustEval(t, s, `I := \x.x`)
	if bound.Kind != KindBinding || bound.Name != "I" {
		t.Fatalf("expected binding of I, got %+v", bound)
	}
	if bound.Format() != `I := \a.a` {
		t.Errorf("unexpected format %q", bound.Format())
	}

	res := mustEval(t, s, "I I I")
	identity, _ := lambda.Parse(`\x.x`)
	if !lambda.Equal(res.Term, identity) {
		t.Errorf("expected identity, got %s", res.Text)
	}
	if res.IsNumeral {
		t.Errorf("identity must not decode as a numeral")
	}
	if res.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", res.Steps)
	}
}

func TestBindingStoresUnexpandedDefinition(t *testing.T) {
	s := newSession(t)
	mustEval(t, s, `TWO := SUCC 1`)
	res := mustEval(t, s, `SUCC := \n.\f.\x.f (n f x)`)
	if res.Text != `\a.\b.\c.b (a b c)` {
		t.Errorf("unexpected rendering %q", res.Text)
	}

	res = mustEval(t, s, "TWO")
	if !res.IsNumeral || res.Numeral != 2 {
		t.Errorf("expected late-bound SUCC to give 2, got %s", res.Text)
	}
}

func TestEvalParseError(t *testing.T) {
	line := `(\x.x`
	_, err := newSession(t).Eval(line)
	var parseErr *lambda.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Pos != 5 {
		t.Errorf("expected position 5, got %d", parseErr.Pos)
	}

	expected := "(\\x.x\n     ^\nError (column 6): expected ')'"
	if got := Diagnostic(line, err); got != expected {
		t.Errorf("expected diagnostic\n%s\ngot\n%s", expected, got)
	}
	if Column(err) != 6 {
		t.Errorf("expected column 6, got %d", Column(err))
	}
}

func TestEvalUnknownName(t *testing.T) {
	_, err := newSession(t).Eval("FOO x")
	var unknown *env.UnknownNameError
	if !errors.As(err, &unknown) || unknown.Name != "FOO" {
		t.Fatalf("expected UnknownNameError for FOO, got %v", err)
	}
	if got := Diagnostic("FOO x", err); got != "Error: unknown name: FOO" {
		t.Errorf("unexpected diagnostic %q", got)
	}
}

func TestBindingErrorPositions(t *testing.T) {
	tests := []struct {
		name string
		line string
		pos  int
	}{
		{"ExpressionParse", `A := (\x.x`, 10},
		{"ExpressionLex", `A := x1`, 6},
		{"LowercaseName", `  ab := x`, 2},
		{"LateBadChar", `AB_C := x`, 2},
		{"EmptyName", `:= x`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			_, err := s.Eval(tt.line)
			var p positioned
			if !errors.As(err, &p) {
				t.Fatalf("expected positioned error, got %v", err)
			}
			if p.Position() != tt.pos {
				t.Errorf("expected position %d, got %d (%v)", tt.pos, p.Position(), err)
			}
			if s.Environment().Len() != 0 {
				t.Errorf("failed binding must not change the environment")
			}
		})
	}
}

func TestEvalWithPrelude(t *testing.T) {
	s := newSession(t, WithPrelude())
	tests := []struct {
		line     string
		expected uint32
	}{
		{"ADD 2 3", 5},
		{"MUL 3 3", 9},
		{"SUB 7 3", 4},
		{"FOLD ADD 0 (CONS 1 (CONS 2 (CONS 3 NIL)))", 6},
	}
	for _, tt := range tests {
		res := mustEval(t, s, tt.line)
		if !res.IsNumeral || res.Numeral != tt.expected {
			t.Errorf("%s: expected %d, got %s", tt.line, tt.expected, res.Text)
		}
	}
}

func TestEvalStepBudget(t *testing.T) {
	s := newSession(t, WithReducer(reduce.New(reduce.WithMaxSteps(50))))
	_, err := s.Eval(`(\x.x x) (\x.x x)`)
	if !errors.Is(err, reduce.ErrNoNormalForm) {
		t.Fatalf("expected ErrNoNormalForm, got %v", err)
	}

	// The session keeps working after a failed line.
	if res := mustEval(t, s, `(\x.x) b`); res.Text != "b" {
		t.Errorf("expected b, got %s", res.Text)
	}
}

func TestEvalCyclicDefinition(t *testing.T) {
	s := newSession(t)
	mustEval(t, s, "A := B")
	mustEval(t, s, "B := A x")

	_, err := s.Eval("A")
	var cyc *env.CyclicDefinitionError
	if !errors.As(err, &cyc) {
		t.Fatalf("expected CyclicDefinitionError, got %v", err)
	}
}

func TestEvalEmptyLine(t *testing.T) {
	if _, err := newSession(t).Eval("   "); !errors.Is(err, ErrEmptyLine) {
		t.Errorf("expected ErrEmptyLine, got %v", err)
	}
}

func TestEvalCache(t *testing.T) {
	cache, err := NewCache(1 << 20)
	if err != nil {
		t.Fatalf("NewCache error: %v", err)
	}
	defer cache.Close()

	s := newSession(t, WithCache(cache), WithPrelude())
	first := mustEval(t, s, "MUL 4 5")
	if first.Cached {
		t.Fatalf("first evaluation must not be cached")
	}
	cache.Wait()

	second := mustEval(t, s, "MUL 4 5")
	if !second.Cached {
		t.Errorf("expected cached result")
	}
	if second.Text != first.Text || second.Numeral != 20 || second.Steps != first.Steps {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestEvalCacheChargesNormalForm(t *testing.T) {
	cache, err := NewCache(100)
	if err != nil {
		t.Fatalf("NewCache error: %v", err)
	}
	defer cache.Close()
	s := newSession(t, WithCache(cache))

	// The key is 36 bytes, but the rendered numeral 27 is over 100.
	big := mustEval(t, s, `(\n.n n) 3`)
	if big.Numeral != 27 {
		t.Fatalf("expected 27, got %s", big.Text)
	}
	cache.Wait()
	if again := mustEval(t, s, `(\n.n n) 3`); again.Cached {
		t.Errorf("normal form larger than the cache budget must not be cached")
	}

	mustEval(t, s, `(\x.x) y`)
	cache.Wait()
	if small := mustEval(t, s, `(\x.x) y`); !small.Cached || small.Text != "y" {
		t.Errorf("expected cached y, got %+v", small)
	}
}
