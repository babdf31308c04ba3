package lambda

import "strings"

// Placeholder is printed for binders nested deeper than the alphabet and for
// bound indices that point outside the rendered term.
const Placeholder = '?'

// Render prints t in source syntax. The binder at nesting depth d is named
// 'a'+d, so the output is deterministic and independent of the names used
// in the input.
func Render(t Term) string {
	var sb strings.Builder
	render(&sb, t, 0)
	return sb.String()
}

func binderName(depth uint32) byte {
	if depth >= 26 {
		return Placeholder
	}
	return byte('a' + depth)
}

func render(sb *strings.Builder, t Term, depth uint32) {
	switch node := t.(type) {
	case FreeVar:
		sb.WriteByte(node.Name)
	case Name:
		sb.WriteString(node.Ident)
	case BoundVar:
		if node.Index >= depth {
			sb.WriteByte(Placeholder)
			return
		}
		sb.WriteByte(binderName(depth - node.Index - 1))
	case Abs:
		sb.WriteByte('\\')
		sb.WriteByte(binderName(depth))
		sb.WriteByte('.')
		render(sb, node.Body, depth+1)
	case App:
		_, parenFun := node.Fun.(Abs)
		renderWrapped(sb, node.Fun, depth, parenFun)
		sb.WriteByte(' ')
		var parenArg bool
		switch node.Arg.(type) {
		case App, Abs:
			parenArg = true
		}
		renderWrapped(sb, node.Arg, depth, parenArg)
	}
}

func renderWrapped(sb *strings.Builder, t Term, depth uint32, paren bool) {
	if !paren {
		render(sb, t, depth)
		return
	}
	sb.WriteByte('(')
	render(sb, t, depth)
	sb.WriteByte(')')
}
