package lambda

// Church builds the canonical Church numeral for n: λf.λx.f (f ... (f x)).
func Church(n uint32) Term {
	var body Term = BoundVar{Index: 0}
	for i := uint32(0); i < n; i++ {
		body = App{Fun: BoundVar{Index: 1}, Arg: body}
	}
	return Abs{Body: Abs{Body: body}}
}

// AsNumeral decodes t if it has the canonical Church numeral shape.
func AsNumeral(t Term) (uint32, bool) {
	for i := 0; i < 2; i++ {
		abs, ok := t.(Abs)
		if !ok {
			return 0, false
		}
		t = abs.Body
	}

	var n uint32
	for {
		switch node := t.(type) {
		case BoundVar:
			if node.Index != 0 {
				return 0, false
			}
			return n, true
		case App:
			if f, ok := node.Fun.(BoundVar); !ok || f.Index != 1 {
				return 0, false
			}
			n++
			t = node.Arg
		default:
			return 0, false
		}
	}
}
