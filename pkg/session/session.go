// Package session evaluates input lines against a persistent naming
// environment: NAME := expr lines store a definition, any other line is
// expanded, normalized and reported.
package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"

	"github.com/vic/lcalc/pkg/env"
	"github.com/vic/lcalc/pkg/lambda"
	"github.com/vic/lcalc/pkg/reduce"
)

// ErrEmptyLine is returned for lines containing only whitespace.
var ErrEmptyLine = errors.New("empty line")

const bindingOperator = ":="

// Session owns a naming environment. It is not safe for concurrent use.
type Session struct {
	id      string
	env     *env.Environment
	reducer *reduce.Reducer
	logger  *log.Logger
	cache   *ristretto.Cache
	prelude bool
}

type Option func(*Session)

func WithEnvironment(e *env.Environment) Option {
	return func(s *Session) {
		s.env = e
	}
}

func WithReducer(r *reduce.Reducer) Option {
	return func(s *Session) {
		s.reducer = r
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithCache memoizes normal forms keyed by the expanded term.
func WithCache(c *ristretto.Cache) Option {
	return func(s *Session) {
		s.cache = c
	}
}

// WithPrelude loads the built-in definitions when the session is created.
func WithPrelude() Option {
	return func(s *Session) {
		s.prelude = true
	}
}

func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:     uuid.NewString(),
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.env == nil {
		s.env = env.New()
	}
	if s.reducer == nil {
		s.reducer = reduce.New()
	}
	if s.prelude {
		if err := env.LoadPrelude(s.env); err != nil {
			return nil, err
		}
	}
	s.logger.Debug().Str("session", s.id).Int("definitions", s.env.Len()).Msg("session started")
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Environment() *env.Environment { return s.env }

// Eval evaluates one line. A failed line leaves the environment unchanged.
func (s *Session) Eval(line string) (*Result, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyLine
	}
	var (
		res *Result
		err error
	)
	if idx := strings.Index(line, bindingOperator); idx >= 0 {
		res, err = s.bind(line, idx)
	} else {
		res, err = s.evaluate(line)
	}
	if err != nil {
		s.logger.Debug().Str("session", s.id).Err(err).Msg("line failed")
		return nil, err
	}
	s.logger.Debug().
		Str("session", s.id).
		Str("kind", res.Kind.String()).
		Uint64("steps", res.Steps).
		Bool("cached", res.Cached).
		Msg("line evaluated")
	return res, nil
}

func (s *Session) bind(line string, idx int) (*Result, error) {
	rawName := line[:idx]
	name := strings.TrimSpace(rawName)
	nameOffset := utf8.RuneCountInString(rawName) - utf8.RuneCountInString(strings.TrimLeftFunc(rawName, unicode.IsSpace))
	if err := env.ValidateName(name); err != nil {
		return nil, shiftPosition(err, nameOffset)
	}

	exprOffset := utf8.RuneCountInString(line[:idx+len(bindingOperator)])
	term, err := lambda.Parse(line[idx+len(bindingOperator):])
	if err != nil {
		return nil, shiftPosition(err, exprOffset)
	}
	if err := s.env.Define(name, term); err != nil {
		return nil, err
	}
	return &Result{
		Kind: KindBinding,
		Name: name,
		Term: term,
		Text: lambda.Render(term),
	}, nil
}

type cacheEntry struct {
	term  lambda.Term
	steps uint64
}

func (s *Session) evaluate(line string) (*Result, error) {
	term, err := lambda.Parse(line)
	if err != nil {
		return nil, err
	}
	expanded, err := s.env.Expand(term)
	if err != nil {
		return nil, err
	}

	key := expanded.String()
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			entry := v.(cacheEntry)
			return newExpressionResult(entry.term, entry.steps, true), nil
		}
	}

	normal, err := s.reducer.Normalize(expanded)
	if err != nil {
		return nil, err
	}
	steps := s.reducer.Stats().BetaReductions
	res := newExpressionResult(normal, steps, false)
	if s.cache != nil {
		// Rendered text approximates the size of the stored normal form.
		s.cache.Set(key, cacheEntry{term: normal, steps: steps}, int64(len(key)+len(res.Text)))
	}
	return res, nil
}

func newExpressionResult(t lambda.Term, steps uint64, cached bool) *Result {
	n, ok := lambda.AsNumeral(t)
	return &Result{
		Kind:      KindExpression,
		Term:      t,
		Text:      lambda.Render(t),
		Numeral:   n,
		IsNumeral: ok,
		Steps:     steps,
		Cached:    cached,
	}
}

// shiftPosition moves a positioned error from substring to line offsets.
func shiftPosition(err error, offset int) error {
	switch e := err.(type) {
	case *lambda.LexError:
		return &lambda.LexError{Pos: e.Pos + offset, Msg: e.Msg}
	case *lambda.ParseError:
		return &lambda.ParseError{Pos: e.Pos + offset, Msg: e.Msg}
	case *env.ValidationError:
		return &env.ValidationError{Pos: e.Pos + offset, Msg: e.Msg}
	default:
		return err
	}
}
