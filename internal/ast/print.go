package ast

import (
	"strings"
)

// DisplayString renders the display form of a datum node per the printed
// forms of the language: numbers with trimmed zeros, raw characters,
// unquoted strings, (a b c) and dotted (a b . c) lists, #(...) vectors.
// Cyclic structures created through set-car!/set-cdr! are cut off with
// "..." at the first repeated cell instead of recursing forever.
func DisplayString(n *Node) string {
	var sb strings.Builder
	writeDisplay(&sb, n, map[*Node]bool{})
	return sb.String()
}

func writeDisplay(sb *strings.Builder, n *Node, seen map[*Node]bool) {
	switch n.Kind {
	case NUMBER:
		sb.WriteString(n.Num.String())
	case STRING:
		sb.WriteString(n.Text)
	case BOOLEAN:
		if n.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case CHARACTER:
		sb.WriteRune(n.Char)
	case SYMBOL, QUASISYMBOL, VARIABLE:
		sb.WriteString(n.Text)
	case LIST:
		writeList(sb, n, seen)
	case VECTOR:
		if seen[n] {
			sb.WriteString("#(...)")
			return
		}
		seen[n] = true
		sb.WriteString("#(")
		for i, elem := range n.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeDisplay(sb, elem, seen)
		}
		sb.WriteByte(')')
		delete(seen, n)
	case LAMBDA:
		sb.WriteString("#<procedure>")
	default:
		// Unevaluated syntax reached the printer; show its kind.
		sb.WriteString("#<" + n.Kind.String() + ">")
	}
}

func writeList(sb *strings.Builder, n *Node, seen map[*Node]bool) {
	sb.WriteByte('(')
	var visited []*Node
	defer func() {
		// Shared but acyclic structure prints in full; only cells still on
		// the current path count as cycles.
		for _, cell := range visited {
			delete(seen, cell)
		}
	}()
	cur := n
	first := true
	for {
		if cur.IsEmptyList() {
			break
		}
		if !cur.IsPair() {
			// improper tail
			sb.WriteString(" . ")
			writeDisplay(sb, cur, seen)
			break
		}
		if seen[cur] {
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString("...")
			break
		}
		seen[cur] = true
		visited = append(visited, cur)
		if !first {
			sb.WriteByte(' ')
		}
		writeDisplay(sb, cur.Car(), seen)
		first = false
		cur = cur.Cdr()
	}
	sb.WriteByte(')')
}
