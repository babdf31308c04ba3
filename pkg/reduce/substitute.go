package reduce

import "github.com/vic/lcalc/pkg/lambda"

// Shift adds by to every bound index in t that is free with respect to the
// cutoff innermost binders.
func Shift(t lambda.Term, by, cutoff uint32) lambda.Term {
	switch n := t.(type) {
	case lambda.BoundVar:
		if n.Index >= cutoff {
			return lambda.BoundVar{Index: n.Index + by}
		}
		return n
	case lambda.Abs:
		return lambda.Abs{Body: Shift(n.Body, by, cutoff+1)}
	case lambda.App:
		return lambda.App{Fun: Shift(n.Fun, by, cutoff), Arg: Shift(n.Arg, by, cutoff)}
	default:
		return t
	}
}

// Substitute replaces index 0 of body with arg, as when the abstraction
// owning body is applied to arg. The removed binder is accounted for in both
// directions: arg is shifted up by the number of binders it is moved under,
// and the remaining free indices of body are shifted down by one.
func Substitute(body, arg lambda.Term) lambda.Term {
	return substitute(body, 0, arg)
}

func substitute(t lambda.Term, depth uint32, arg lambda.Term) lambda.Term {
	switch n := t.(type) {
	case lambda.BoundVar:
		switch {
		case n.Index == depth:
			return Shift(arg, depth, 0)
		case n.Index > depth:
			return lambda.BoundVar{Index: n.Index - 1}
		default:
			return n
		}
	case lambda.Abs:
		return lambda.Abs{Body: substitute(n.Body, depth+1, arg)}
	case lambda.App:
		return lambda.App{Fun: substitute(n.Fun, depth, arg), Arg: substitute(n.Arg, depth, arg)}
	default:
		return t
	}
}
