package conformance

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	ioerrors "github.com/wippyai/iosafe/errors"
)

func TestConformance(t *testing.T) {
	tests := []struct {
		dir        string
		wantReject bool
	}{
		{"accept_marked", false},
		{"accept_literal_gate", false},
		{"reject_rawfd", true},
		{"reject_unmarked", true},
		{"reject_direct", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if err := Verify(filepath.Join("testdata", tt.dir), tt.wantReject); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestTypeCheck_RejectDirectMentionsField(t *testing.T) {
	msgs, err := TypeCheck(filepath.Join("testdata", "reject_direct"))
	if err != nil {
		t.Fatalf("TypeCheck failed: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatal("Expected type errors")
	}

	// The rejection must be about the hidden field, not an unrelated error.
	found := false
	for _, m := range msgs {
		if strings.Contains(m, "raw") {
			found = true
		}
	}
	if !found {
		t.Fatalf("Expected an error naming the raw field, got %v", msgs)
	}
}

func TestVerify_Mismatch(t *testing.T) {
	err := Verify(filepath.Join("testdata", "accept_marked"), true)
	if err == nil {
		t.Fatal("Expected reject-expected error")
	}
	var serr *ioerrors.Error
	if !errors.As(err, &serr) || serr.Kind != ioerrors.KindRejectExpected {
		t.Fatalf("Expected reject_expected, got %v", err)
	}

	err = Verify(filepath.Join("testdata", "reject_rawfd"), false)
	if err == nil {
		t.Fatal("Expected compile-expected error")
	}
	if !errors.As(err, &serr) || serr.Kind != ioerrors.KindCompileExpected {
		t.Fatalf("Expected compile_expected, got %v", err)
	}
}
