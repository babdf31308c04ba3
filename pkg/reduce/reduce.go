// Package reduce normalizes lambda terms in binder-distance form using
// normal-order (leftmost-outermost) reduction, including under binders.
package reduce

import (
	"fmt"

	"github.com/oarkflow/errors"

	"github.com/vic/lcalc/pkg/lambda"
)

// ErrNoNormalForm is returned when a step budget is exhausted before the
// term reached normal form. It does not mean the term has no normal form.
var ErrNoNormalForm = errors.New("term did not reach normal form within the step budget")

// UnexpandedNameError reports a Name node reaching the reducer.
type UnexpandedNameError struct {
	Name string
}

func (e *UnexpandedNameError) Error() string {
	return fmt.Sprintf("unexpanded name %s in reduced term", e.Name)
}

// Stats holds reduction statistics for the most recent Normalize call.
type Stats struct {
	BetaReductions uint64
	HeadReductions uint64
	MaxBinderDepth uint32
}

// Reducer normalizes terms. A zero step budget means reduction is
// unbounded and may not terminate. A Reducer is not safe for concurrent use.
type Reducer struct {
	maxSteps uint64
	stats    Stats

	traceBuf []TraceEvent
	traceOn  bool
}

type Option func(*Reducer)

// WithMaxSteps bounds the number of beta contractions per Normalize call.
func WithMaxSteps(n uint64) Option {
	return func(r *Reducer) {
		r.maxSteps = n
	}
}

func New(opts ...Option) *Reducer {
	r := &Reducer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reducer) MaxSteps() uint64 { return r.maxSteps }

func (r *Reducer) Stats() Stats { return r.stats }

func (r *Reducer) reset() {
	r.stats = Stats{}
	if r.traceOn {
		r.traceBuf = r.traceBuf[:0]
	}
}

// Normalize reduces t to full normal form.
func (r *Reducer) Normalize(t lambda.Term) (lambda.Term, error) {
	r.reset()
	return r.full(t, 0)
}

// HeadNormalize reduces t until it is an abstraction, a variable, or an
// application whose function part cannot become an abstraction.
func (r *Reducer) HeadNormalize(t lambda.Term) (lambda.Term, error) {
	r.reset()
	return r.head(t, 0)
}

func (r *Reducer) step(rule RuleKind, depth uint32) error {
	if r.maxSteps > 0 && r.stats.BetaReductions >= r.maxSteps {
		return ErrNoNormalForm
	}
	r.stats.BetaReductions++
	if rule == RuleHeadBeta {
		r.stats.HeadReductions++
	}
	r.recordTrace(rule, depth)
	return nil
}

func (r *Reducer) head(t lambda.Term, depth uint32) (lambda.Term, error) {
	switch n := t.(type) {
	case lambda.App:
		fun, err := r.head(n.Fun, depth)
		if err != nil {
			return nil, err
		}
		if abs, ok := fun.(lambda.Abs); ok {
			if err := r.step(RuleHeadBeta, depth); err != nil {
				return nil, err
			}
			return r.head(Substitute(abs.Body, n.Arg), depth)
		}
		return lambda.App{Fun: fun, Arg: n.Arg}, nil
	case lambda.Name:
		return nil, &UnexpandedNameError{Name: n.Ident}
	default:
		return t, nil
	}
}

func (r *Reducer) full(t lambda.Term, depth uint32) (lambda.Term, error) {
	if depth > r.stats.MaxBinderDepth {
		r.stats.MaxBinderDepth = depth
	}
	switch n := t.(type) {
	case lambda.App:
		fun, err := r.head(n.Fun, depth)
		if err != nil {
			return nil, err
		}
		if abs, ok := fun.(lambda.Abs); ok {
			if err := r.step(RuleBeta, depth); err != nil {
				return nil, err
			}
			return r.full(Substitute(abs.Body, n.Arg), depth)
		}
		fun, err = r.full(fun, depth)
		if err != nil {
			return nil, err
		}
		arg, err := r.full(n.Arg, depth)
		if err != nil {
			return nil, err
		}
		return lambda.App{Fun: fun, Arg: arg}, nil
	case lambda.Abs:
		body, err := r.full(n.Body, depth+1)
		if err != nil {
			return nil, err
		}
		return lambda.Abs{Body: body}, nil
	case lambda.Name:
		return nil, &UnexpandedNameError{Name: n.Ident}
	default:
		return t, nil
	}
}

// Normalize reduces t to normal form without a step budget. t must not
// contain Name nodes.
func Normalize(t lambda.Term) lambda.Term {
	res, err := New().Normalize(t)
	if err != nil {
		panic(err)
	}
	return res
}

// HeadNormalize reduces t to weak head normal form without a step budget.
func HeadNormalize(t lambda.Term) lambda.Term {
	res, err := New().HeadNormalize(t)
	if err != nil {
		panic(err)
	}
	return res
}
