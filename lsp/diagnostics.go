package lsp

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sepia-mori/nepeta"
)

// Diagnose parses source and returns one diagnostic per reported parse
// error, in source order. The document itself is discarded.
func Diagnose(source []byte) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	nepeta.Parse(source, func(kind nepeta.ErrorKind, ch byte, line, column int) {
		severity := protocol.DiagnosticSeverityError
		if kind.IsWarning() {
			severity = protocol.DiagnosticSeverityWarning
		}
		origin := serverName

		pos := protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1),
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: &severity,
			Source:   &origin,
			Message:  diagnosticMessage(kind, ch),
		})
	})
	return diagnostics
}

func diagnosticMessage(kind nepeta.ErrorKind, ch byte) string {
	switch kind {
	case nepeta.ErrIllegalCharacter:
		return fmt.Sprintf("illegal character %q", ch)
	case nepeta.ErrNodeNotClosed:
		return "nested node is never closed; add a '#' line"
	case nepeta.ErrCommentNotClosed:
		return "comment is never closed; add '*/'"
	case nepeta.ErrStringNotClosed:
		return "string is never closed"
	case nepeta.ErrBlockNotClosed:
		return "block is never closed; add '}'"
	case nepeta.ErrTooManyNodeClosingMarkers:
		return "'#' closes a nested node, but none is open"
	case nepeta.ErrBadCodec:
		return "unknown block codec; expected 'text' or 'base64'"
	case nepeta.ErrRecursionLimitReached:
		return "nodes are nested too deeply"
	case nepeta.ErrRequireNewline:
		return fmt.Sprintf("expected end of line, found %q", ch)
	case nepeta.ErrInvalidEscape:
		return fmt.Sprintf("invalid escape '\\%c'", ch)
	case nepeta.ErrBadBlockClose:
		return "'}' at text indentation is kept as text; escape it as '\\}'"
	}
	return kind.String()
}
