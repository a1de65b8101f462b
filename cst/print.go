package cst

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented outline of the subtree at id to w.
func (t *Tree) Fprint(w io.Writer, id NodeID) error {
	return t.fprint(w, id, 0)
}

func (t *Tree) String() string {
	buf := &strings.Builder{}
	if err := t.Fprint(buf, t.Root); err != nil {
		return err.Error()
	}
	return buf.String()
}

func (t *Tree) fprint(w io.Writer, id NodeID, depth int) error {
	indent := strings.Repeat("  ", depth)
	n := t.Node(id)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s<empty>\n", indent)
		return err
	}
	line := fmt.Sprintf("%s%s [%d,%d)", indent, n.Kind, n.Start, n.End)
	if n.Anchor != "" {
		line += " &" + n.Anchor
	}
	if n.Tag != "" {
		line += " " + n.Tag
	}
	switch n.Kind {
	case ScalarKind, IncludeKind:
		line += " " + strconv.Quote(n.Value) + " " + n.Style.String()
	case AliasKind:
		line += fmt.Sprintf(" *%s -> %d", n.Ref, n.Target)
	case MapKind, SeqKind:
		if n.Flow {
			line += " flow"
		}
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	switch n.Kind {
	case MapKind, SeqKind:
		for _, c := range n.Children {
			if err := t.fprint(w, c, depth+1); err != nil {
				return err
			}
		}
	case PairKind:
		if err := t.fprint(w, n.Key, depth+1); err != nil {
			return err
		}
		if err := t.fprint(w, n.Val, depth+1); err != nil {
			return err
		}
	}
	return nil
}
