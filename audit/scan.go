package audit

import (
	"go/ast"
	"go/constant"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	ioerrors "github.com/wippyai/iosafe/errors"
)

// iosafePath anchors everything the scanner matches.
const iosafePath = "github.com/wippyai/iosafe"

// Site is one gate call: a place where a bare raw value entered the safe
// world under a caller acknowledgment.
type Site struct {
	// Pos is the file:line:col of the call.
	Pos string `yaml:"pos"`
	// Package is the import path of the calling package.
	Package string `yaml:"package"`
	// Function is the enclosing function, "" at package scope.
	Function string `yaml:"function,omitempty"`
	// Callee is the gate function being called.
	Callee string `yaml:"callee"`
	// Reason is the acknowledgment text when it is a string literal at the
	// call site, "" when it is computed or absent.
	Reason string `yaml:"reason,omitempty"`
	// Literal reports whether the raw argument is a constant, the forging
	// pattern the discipline exists to confine.
	Literal bool `yaml:"literal,omitempty"`
}

// Declaration is one capability marker declaration: a type embedding
// iosafe.Assertion, with the expose capabilities it implements.
type Declaration struct {
	Pos     string   `yaml:"pos"`
	Package string   `yaml:"package"`
	Type    string   `yaml:"type"`
	Exposes []string `yaml:"exposes,omitempty"`
}

// Report is the scanned audit surface of a module.
type Report struct {
	Sites        []Site        `yaml:"sites"`
	Declarations []Declaration `yaml:"declarations"`
}

// Scan loads the packages matched by patterns (default "./...") rooted at
// dir and collects every gate call site and marker declaration.
func Scan(dir string, patterns ...string) (*Report, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedDeps,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, ioerrors.LoadFailure(strings.Join(patterns, " "), err)
	}

	report := &Report{}
	for _, pkg := range pkgs {
		scanPackage(pkg, report)
	}

	sort.Slice(report.Sites, func(i, j int) bool {
		return report.Sites[i].Pos < report.Sites[j].Pos
	})
	sort.Slice(report.Declarations, func(i, j int) bool {
		return report.Declarations[i].Pos < report.Declarations[j].Pos
	})
	return report, nil
}

func scanPackage(pkg *packages.Package, report *Report) {
	if pkg.TypesInfo == nil {
		return
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				fn := decl.Name.Name
				if decl.Recv != nil {
					fn = recvName(decl.Recv) + "." + fn
				}
				ast.Inspect(decl, func(n ast.Node) bool {
					if call, ok := n.(*ast.CallExpr); ok {
						recordGateCall(pkg, call, fn, report)
					}
					return true
				})
			case *ast.GenDecl:
				for _, spec := range decl.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					recordDeclaration(pkg, ts, report)
				}
			}
		}
	}
}

func recordGateCall(pkg *packages.Package, call *ast.CallExpr, enclosing string, report *Report) {
	fn := typeutil.Callee(pkg.TypesInfo, call)
	if fn == nil || fn.Name() == "Acknowledge" {
		return
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}

	ackIdx := -1
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if isIosafeNamed(params.At(i).Type(), "Acknowledgment") {
			ackIdx = i
			break
		}
	}
	if ackIdx == -1 {
		return
	}

	callee := fn.Name()
	if f, ok := fn.(*types.Func); ok {
		callee = f.FullName()
	}

	site := Site{
		Pos:      pkg.Fset.Position(call.Pos()).String(),
		Package:  pkg.PkgPath,
		Function: enclosing,
		Callee:   callee,
	}

	if ackIdx < len(call.Args) {
		site.Reason = literalReason(pkg, call.Args[ackIdx])
	}
	for i := 0; i < params.Len() && i < len(call.Args); i++ {
		if !isIosafeNamed(params.At(i).Type(), "RawFd") {
			continue
		}
		if tv, ok := pkg.TypesInfo.Types[call.Args[i]]; ok && tv.Value != nil {
			site.Literal = true
		}
	}

	report.Sites = append(report.Sites, site)
}

// literalReason extracts the reason string when the acknowledgment argument
// is a direct iosafe.Acknowledge call with a constant string.
func literalReason(pkg *packages.Package, arg ast.Expr) string {
	call, ok := arg.(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return ""
	}
	fn := typeutil.Callee(pkg.TypesInfo, call)
	if fn == nil || fn.Name() != "Acknowledge" || fn.Pkg() == nil || fn.Pkg().Path() != iosafePath {
		return ""
	}
	tv, ok := pkg.TypesInfo.Types[call.Args[0]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return ""
	}
	return constant.StringVal(tv.Value)
}

func recordDeclaration(pkg *packages.Package, ts *ast.TypeSpec, report *Report) {
	obj, ok := pkg.TypesInfo.Defs[ts.Name]
	if !ok || obj == nil {
		return
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return
	}

	marked := false
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() && isIosafeNamed(f.Type(), "Assertion") {
			marked = true
			break
		}
	}
	if !marked {
		return
	}

	decl := Declaration{
		Pos:     pkg.Fset.Position(ts.Pos()).String(),
		Package: pkg.PkgPath,
		Type:    ts.Name.Name,
	}

	mset := types.NewMethodSet(types.NewPointer(named))
	for _, m := range []string{"AsRawFd", "IntoRawFd", "AsRawHandle", "AsRawSocket"} {
		if sel := mset.Lookup(nil, m); sel != nil {
			decl.Exposes = append(decl.Exposes, m)
		}
	}

	report.Declarations = append(report.Declarations, decl)
}

func recvName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	t := recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	if ident, ok := t.(*ast.Ident); ok {
		return ident.Name
	}
	if idx, ok := t.(*ast.IndexExpr); ok {
		if ident, ok := idx.X.(*ast.Ident); ok {
			return ident.Name
		}
	}
	return ""
}

func isIosafeNamed(t types.Type, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == name && obj.Pkg() != nil && obj.Pkg().Path() == iosafePath
}
