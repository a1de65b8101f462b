// Package libdiff computes line diffs between a document and its
// re-encoded form.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range split(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

func split(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func Changed(ls []Line) bool {
	for i := range ls {
		if ls[i].Op != Equal {
			return true
		}
	}
	return false
}

// Hunk is a run of lines with the line numbers, zero based, at which it
// starts in from and to.
type Hunk struct {
	FromLine, ToLine int
	Lines            []Line
}

// Hunks groups the changes in ls keeping n lines of context around each.
func Hunks(ls []Line, n int) []Hunk {
	keep := make([]bool, len(ls))
	for i := range ls {
		if ls[i].Op == Equal {
			continue
		}
		for j := max(0, i-n); j < min(len(ls), i+n+1); j++ {
			keep[j] = true
		}
	}
	var (
		res      []Hunk
		cur      *Hunk
		from, to int
	)
	for i := range ls {
		if !keep[i] {
			cur = nil
		} else {
			if cur == nil {
				res = append(res, Hunk{FromLine: from, ToLine: to})
				cur = &res[len(res)-1]
			}
			cur.Lines = append(cur.Lines, ls[i])
		}
		switch ls[i].Op {
		case Equal:
			from++
			to++
		case Delete:
			from++
		case Insert:
			to++
		}
	}
	return res
}

// Write writes hunks in unified form.  paint, when not nil, decorates
// each line.
func Write(w io.Writer, hunks []Hunk, paint func(Op, string) string) error {
	for _, h := range hunks {
		nFrom, nTo := 0, 0
		for _, l := range h.Lines {
			if l.Op != Insert {
				nFrom++
			}
			if l.Op != Delete {
				nTo++
			}
		}
		if _, err := fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.FromLine+1, nFrom, h.ToLine+1, nTo); err != nil {
			return err
		}
		for _, l := range h.Lines {
			text := l.Op.Prefix() + l.Text
			if paint != nil {
				text = paint(l.Op, text)
			}
			if _, err := fmt.Fprintln(w, text); err != nil {
				return err
			}
		}
	}
	return nil
}
