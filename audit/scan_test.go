package audit

import (
	"testing"
)

func TestScan_Fixture(t *testing.T) {
	report, err := Scan(".", "./testdata/scanmod")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(report.Sites) != 3 {
		t.Fatalf("Expected 3 gate sites, got %d: %+v", len(report.Sites), report.Sites)
	}

	byFunc := map[string]Site{}
	for _, s := range report.Sites {
		byFunc[s.Function] = s
		if s.Callee != "github.com/wippyai/iosafe/fd.FromRaw" {
			t.Errorf("Unexpected callee %q", s.Callee)
		}
	}

	derived, ok := byFunc["wrapDerived"]
	if !ok {
		t.Fatal("Missing site for wrapDerived")
	}
	if derived.Literal {
		t.Error("wrapDerived should not be flagged as literal")
	}
	if derived.Reason != "caller guarantees raw came from the OS" {
		t.Errorf("Wrong reason %q", derived.Reason)
	}

	literal, ok := byFunc["wrapLiteral"]
	if !ok {
		t.Fatal("Missing site for wrapLiteral")
	}
	if !literal.Literal {
		t.Error("wrapLiteral should be flagged as literal")
	}

	computed, ok := byFunc["wrapComputedReason"]
	if !ok {
		t.Fatal("Missing site for wrapComputedReason")
	}
	if computed.Reason != "" {
		t.Errorf("Computed reason should be empty in the report, got %q", computed.Reason)
	}

	// The fixture declares one marked type of its own.
	if len(report.Declarations) != 1 {
		t.Fatalf("Expected 1 declaration, got %d: %+v", len(report.Declarations), report.Declarations)
	}
	decl := report.Declarations[0]
	if decl.Type != "Pipe" {
		t.Errorf("Expected declaration of Pipe, got %q", decl.Type)
	}
	if len(decl.Exposes) != 1 || decl.Exposes[0] != "AsRawFd" {
		t.Errorf("Expected Pipe to expose AsRawFd, got %v", decl.Exposes)
	}
}

func TestScan_BadPattern(t *testing.T) {
	report, err := Scan(".", "./testdata/doesnotexist")
	if err == nil && len(report.Sites) != 0 {
		t.Fatal("Expected failure or empty report for missing package")
	}
}
