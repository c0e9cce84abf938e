package conformance

import (
	"golang.org/x/tools/go/packages"

	ioerrors "github.com/wippyai/iosafe/errors"
)

// TypeCheck loads and type-checks the single package rooted at dir and
// returns the compile error messages, empty when the program compiles. A
// non-nil error means the load itself failed, not the program.
func TypeCheck(dir string) ([]string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedDeps,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, ioerrors.LoadFailure(dir, err)
	}

	var msgs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs, nil
}

// Verify type-checks dir and asserts the expected outcome, returning a
// structured error on mismatch.
func Verify(dir string, wantReject bool) error {
	msgs, err := TypeCheck(dir)
	if err != nil {
		return err
	}

	if wantReject && len(msgs) == 0 {
		return ioerrors.RejectExpected(dir)
	}
	if !wantReject && len(msgs) > 0 {
		return ioerrors.CompileExpected(dir, ioerrors.New(ioerrors.PhaseConformance, ioerrors.KindCompileExpected).
			Detail("%d type errors, first: %s", len(msgs), msgs[0]).
			Build())
	}
	return nil
}
