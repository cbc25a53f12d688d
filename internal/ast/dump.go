package ast

import (
	"fmt"
	"strings"
)

// Dump renders an indented tree of the node for the AST dump command
// and for debugging. It is not the display form; see DisplayString.
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0, map[*Node]bool{})
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int, seen map[*Node]bool) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString(n.Kind.String())

	switch n.Kind {
	case NUMBER:
		fmt.Fprintf(sb, " %s", n.Num.String())
	case STRING:
		fmt.Fprintf(sb, " %q", n.Text)
	case BOOLEAN:
		fmt.Fprintf(sb, " %v", n.Bool)
	case CHARACTER:
		fmt.Fprintf(sb, " %q", n.Char)
	case SYMBOL, QUASISYMBOL, VARIABLE, SET, DECLARATION:
		if n.Text != "" {
			fmt.Fprintf(sb, " %s", n.Text)
		}
	}
	if len(n.Names) > 0 {
		fmt.Fprintf(sb, " (%s)", strings.Join(n.Names, " "))
	}
	sb.WriteByte('\n')

	if seen[n] {
		sb.WriteString(indent)
		sb.WriteString("  ...\n")
		return
	}
	seen[n] = true
	for _, child := range n.Children {
		dump(sb, child, depth+1, seen)
	}
	delete(seen, n)
}
