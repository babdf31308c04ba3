package lambda

import (
	"fmt"
	"strconv"
)

// Term represents a lambda calculus term in binder-distance form.
// The set of variants is closed: FreeVar, BoundVar, App, Abs and Name.
type Term interface {
	String() string
	term()
}

// FreeVar is a single-letter variable with no enclosing binder of that name.
type FreeVar struct {
	Name byte
}

func (FreeVar) term() {}

func (v FreeVar) String() string {
	return string(v.Name)
}

// BoundVar refers to a binder by distance: 0 is the nearest enclosing Abs.
type BoundVar struct {
	Index uint32
}

func (BoundVar) term() {}

func (v BoundVar) String() string {
	return strconv.FormatUint(uint64(v.Index), 10)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Abs represents an abstraction. The parameter name is erased at parse time.
type Abs struct {
	Body Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return fmt.Sprintf("(λ.%s)", a.Body)
}

// Name is a reference into a naming environment. It must be expanded
// before the term is reduced.
type Name struct {
	Ident string
}

func (Name) term() {}

func (n Name) String() string {
	return n.Ident
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case FreeVar:
		y, ok := b.(FreeVar)
		return ok && x.Name == y.Name
	case BoundVar:
		y, ok := b.(BoundVar)
		return ok && x.Index == y.Index
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	case Abs:
		y, ok := b.(Abs)
		return ok && Equal(x.Body, y.Body)
	case Name:
		y, ok := b.(Name)
		return ok && x.Ident == y.Ident
	default:
		return false
	}
}

// HasNames reports whether t still contains unexpanded Name nodes.
func HasNames(t Term) bool {
	switch x := t.(type) {
	case Name:
		return true
	case App:
		return HasNames(x.Fun) || HasNames(x.Arg)
	case Abs:
		return HasNames(x.Body)
	default:
		return false
	}
}
