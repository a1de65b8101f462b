package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBlockHeader  = errors.New("bad block scalar header")
	ErrChompRepeat  = errors.New("repeat of a chomping mode identifier")
	ErrIndentRepeat = errors.New("repeat of an indentation width identifier")
	ErrIndentZero   = errors.New("bad explicit indentation width of a block scalar; it cannot be less than one")
)

// ScanErr is a lexical error at a position.
type ScanErr struct {
	Err error
	Pos *Pos
}

func NewScanErr(err error, pos *Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: pos}
}

func (e *ScanErr) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}
