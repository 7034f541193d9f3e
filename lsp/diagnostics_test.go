package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseCleanDocument(t *testing.T) {
	diagnostics := Diagnose([]byte("Key value\n#nested\n\tchild\n#\n"))
	if len(diagnostics) != 0 {
		t.Errorf("got %d diagnostics, want 0: %v", len(diagnostics), diagnostics)
	}
}

func TestDiagnosePositionsAndSeverity(t *testing.T) {
	diagnostics := Diagnose([]byte("Key \"da\nta\""))
	if len(diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diagnostics))
	}

	// Parser positions are 1-based, LSP positions 0-based.
	first := diagnostics[0]
	if first.Range.Start.Line != 0 || first.Range.Start.Character != 4 {
		t.Errorf("first diagnostic at %v", first.Range.Start)
	}
	if *first.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("unclosed string should be an error")
	}

	second := diagnostics[1]
	if second.Range.Start.Line != 1 || second.Range.Start.Character != 2 {
		t.Errorf("second diagnostic at %v", second.Range.Start)
	}
}

func TestDiagnoseWarningSeverity(t *testing.T) {
	diagnostics := Diagnose([]byte("Key {\n\tempty\n\t}\n}\n"))
	if len(diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diagnostics))
	}
	if *diagnostics[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("bad block close should be a warning")
	}
}
