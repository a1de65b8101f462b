// Package diag holds the diagnostics reported while materializing a
// document.
package diag

import (
	"fmt"
	"slices"

	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/jpath"
	"github.com/signadot/yamlptr/token"
	"go.lsp.dev/protocol"
)

const (
	CodeException         = "YAMLException"
	CodeIncompatibleValue = "YAMLIncompatibleValue"

	Source = "yamlptr"
)

const (
	msgMissedComma = "missed comma between flow collection entries"
	msgMixedFlow   = "invalid mixed usage of block and flow styles"
)

type Diagnostic struct {
	Code     string                      `json:"code"`
	Message  string                      `json:"message"`
	Severity protocol.DiagnosticSeverity `json:"severity"`
	Range    protocol.Range              `json:"range"`
	Path     jpath.Path                  `json:"path,omitempty"`
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s (%s)", d.Range.Start.Line+1, d.Range.Start.Character+1,
		SeverityName(d.Severity), d.Message, d.Code)
}

// Protocol converts d for publishing over LSP.
func (d *Diagnostic) Protocol() protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    d.Range,
		Severity: d.Severity,
		Code:     d.Code,
		Source:   Source,
		Message:  d.Message,
	}
}

func SeverityName(s protocol.DiagnosticSeverity) string {
	switch s {
	case protocol.DiagnosticSeverityError:
		return "error"
	case protocol.DiagnosticSeverityWarning:
		return "warning"
	case protocol.DiagnosticSeverityInformation:
		return "info"
	case protocol.DiagnosticSeverityHint:
		return "hint"
	}
	return "unknown"
}

// FromErrors converts structural errors.  A run of missed comma errors
// becomes a single mixed flow and block style error extending to the
// error which ends the run.
func FromErrors(errs []cst.Error, lines token.Lines) []Diagnostic {
	res := make([]Diagnostic, 0, len(errs))
	brokenFlow := -1
	for i := range errs {
		e := &errs[i]
		d := fromError(e, lines)
		if e.Reason == msgMissedComma {
			if brokenFlow == -1 {
				brokenFlow = len(res)
			}
		} else if brokenFlow != -1 {
			res[brokenFlow].Range.End = d.Range.End
			res[brokenFlow].Message = msgMixedFlow
			res = res[:brokenFlow+1]
			brokenFlow = -1
		}
		res = append(res, d)
	}
	return res
}

func fromError(e *cst.Error, lines token.Lines) Diagnostic {
	sev := protocol.DiagnosticSeverityError
	if e.IsWarning {
		sev = protocol.DiagnosticSeverityWarning
	}
	start := protocol.Position{Line: uint32(e.Line), Character: uint32(e.Column)}
	end := start
	if e.ToLineEnd {
		end.Character = uint32(lines.LineLen(e.Line))
	}
	return Diagnostic{
		Code:     CodeException,
		Message:  e.Reason,
		Severity: sev,
		Range:    protocol.Range{Start: start, End: end},
	}
}

// Sort orders ds by start line, keeping the order of diagnostics on the
// same line.
func Sort(ds []Diagnostic) {
	slices.SortStableFunc(ds, func(a, b Diagnostic) int {
		return int(a.Range.Start.Line) - int(b.Range.Start.Line)
	})
}

// Blocking reports whether ds has an error.
func Blocking(ds []Diagnostic) bool {
	return slices.ContainsFunc(ds, func(d Diagnostic) bool {
		return d.Severity == protocol.DiagnosticSeverityError
	})
}
