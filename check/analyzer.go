package check

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// iosafePath is the import path of the package defining the marker and the
// acknowledgment type. Everything the analyzer matches is anchored to it.
const iosafePath = "github.com/wippyai/iosafe"

// Analyzer reports uses of raw descriptors that satisfy the compiler but
// violate the I/O-safety discipline.
var Analyzer = &analysis.Analyzer{
	Name:     "iosafecheck",
	Doc:      "report forged raw handles, empty acknowledgments, marker-less generic bounds and bypassed construction gates",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.TypeSpec)(nil),
	}

	ins.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			checkCall(pass, n)
		case *ast.FuncDecl:
			checkTypeParams(pass, n.Type.TypeParams)
			checkConstructor(pass, n)
		case *ast.TypeSpec:
			checkTypeParams(pass, n.TypeParams)
		}
	})

	return nil, nil
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr) {
	fn := typeutil.Callee(pass.TypesInfo, call)
	if fn == nil {
		return
	}

	// iosafe.Acknowledge("") asserts nothing.
	if fn.Name() == "Acknowledge" && isIosafePkg(fn.Pkg()) && len(call.Args) == 1 {
		if tv, ok := pass.TypesInfo.Types[call.Args[0]]; ok && tv.Value != nil {
			if constant.StringVal(tv.Value) == "" {
				pass.Reportf(call.Args[0].Pos(), "acknowledgment reason is empty")
			}
		}
		return
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}

	// A gate is any function demanding an Acknowledgment. Constant raw
	// arguments to a gate are forged handles unless proven otherwise.
	if !signatureHasAcknowledgment(sig) {
		return
	}
	params := sig.Params()
	for i := 0; i < params.Len() && i < len(call.Args); i++ {
		if !isIosafeNamed(params.At(i).Type(), "RawFd") {
			continue
		}
		tv, ok := pass.TypesInfo.Types[call.Args[i]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
			continue
		}
		pass.Reportf(call.Args[i].Pos(),
			"raw descriptor forged from constant %s", tv.Value.String())
	}
}

func checkTypeParams(pass *analysis.Pass, tparams *ast.FieldList) {
	if tparams == nil {
		return
	}
	for _, field := range tparams.List {
		tv, ok := pass.TypesInfo.Types[field.Type]
		if !ok {
			continue
		}
		iface, ok := tv.Type.Underlying().(*types.Interface)
		if !ok {
			continue
		}
		if interfaceExposesRaw(iface) && !interfaceHasMarker(iface) {
			pass.Reportf(field.Type.Pos(),
				"constraint requires raw descriptor exposure without the iosafe.Safe marker")
		}
	}
}

// checkConstructor flags exported functions that produce a marked wrapper
// from a raw value while bypassing the acknowledgment requirement.
func checkConstructor(pass *analysis.Pass, decl *ast.FuncDecl) {
	if !decl.Name.IsExported() || decl.Type.Results == nil {
		return
	}
	obj, ok := pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return
	}
	sig := obj.Type().(*types.Signature)

	returnsMarked := false
	results := sig.Results()
	for i := 0; i < results.Len(); i++ {
		if structDeclaresMarker(results.At(i).Type()) {
			returnsMarked = true
			break
		}
	}
	if !returnsMarked {
		return
	}

	takesRaw := false
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if isIosafeNamed(params.At(i).Type(), "RawFd") {
			takesRaw = true
			break
		}
	}
	if !takesRaw || signatureHasAcknowledgment(sig) {
		return
	}

	pass.Reportf(decl.Name.Pos(),
		"%s returns a safety-marked wrapper from a raw descriptor without an acknowledgment", decl.Name.Name)
}

func signatureHasAcknowledgment(sig *types.Signature) bool {
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if isIosafeNamed(params.At(i).Type(), "Acknowledgment") {
			return true
		}
	}
	return false
}

// interfaceExposesRaw reports whether the interface's method set contains
// AsRawFd() RawFd, directly or through embedding.
func interfaceExposesRaw(iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if m.Name() != "AsRawFd" {
			continue
		}
		sig, ok := m.Type().(*types.Signature)
		if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}
		if isIosafeNamed(sig.Results().At(0).Type(), "RawFd") {
			return true
		}
	}
	return false
}

// interfaceHasMarker reports whether the interface's method set includes the
// marker's unexported method, i.e. whether it embeds iosafe.Safe.
func interfaceHasMarker(iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if m.Name() == "ioSafe" && isIosafePkg(m.Pkg()) {
			return true
		}
	}
	return false
}

// structDeclaresMarker reports whether t (possibly behind a pointer) is a
// named struct type embedding iosafe.Assertion.
func structDeclaresMarker(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() && isIosafeNamed(f.Type(), "Assertion") {
			return true
		}
	}
	return false
}

func isIosafeNamed(t types.Type, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == name && isIosafePkg(obj.Pkg())
}

func isIosafePkg(pkg *types.Package) bool {
	return pkg != nil && pkg.Path() == iosafePath
}
