package token

import (
	"fmt"
	"strconv"
)

// Doc pairs a document with its line index.
type Doc struct {
	d     []byte
	Lines Lines
}

func NewDoc(d []byte) *Doc {
	return &Doc{d: d, Lines: BuildLines(d)}
}

// NewDocLines is NewDoc with an already built line index for d.
func NewDocLines(d []byte, l Lines) *Doc {
	return &Doc{d: d, Lines: l}
}

func (d *Doc) Bytes() []byte {
	return d.d
}

func (d *Doc) LineCol(off int) (int, int) {
	pos := d.Lines.Position(off)
	return int(pos.Line), int(pos.Character)
}

func (d *Doc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (d *Doc) End() *Pos {
	return &Pos{
		I: len(d.d),
		D: d,
	}
}

type Pos struct {
	I int
	D *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, min(p.I-5, len(p.D.d))):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
