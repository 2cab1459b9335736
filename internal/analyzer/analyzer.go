package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyze loads the Go packages under dir and finds which named types
// implement which interfaces, and which structs embed other named types.
func Analyze(ctx context.Context, dir string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	dir = abs

	logger.Debug("analyzing", "dir", dir, "interface", opts.Interface)

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "packages_count", len(pkgs))

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var methodSetCache typeutil.MethodSetCache
	var ifaces []InterfaceDef
	var namedTypes []TypeDef

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			src := resolveSourceFile(pkg.Fset, tn.Pos(), dir)

			if iface, ok := named.Underlying().(*types.Interface); ok {
				ifaces = append(ifaces, InterfaceDef{
					Name:       tn.Name(),
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					Methods:    extractIfaceMethods(iface),
					TypeObj:    iface,
					SourceFile: src,
				})
				logger.Debug("found interface", "name", tn.Name(), "package", pkg.PkgPath, "methods", iface.NumMethods())
				continue
			}

			methods := extractTypeMethods(named, &methodSetCache)
			namedTypes = append(namedTypes, TypeDef{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    methods,
				TypeObj:    named,
				SourceFile: src,
			})
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath, "methods", len(methods))
		}
	}

	logger.Info("types collected", "interfaces", len(ifaces), "types", len(namedTypes))

	var relations []Relation
	for i := range namedTypes {
		t := &namedTypes[i]
		for j := range ifaces {
			iface := &ifaces[j]
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}
			switch {
			case types.Implements(t.TypeObj, iface.TypeObj):
				relations = append(relations, Relation{Type: t, Interface: iface})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			case types.Implements(types.NewPointer(t.TypeObj), iface.TypeObj):
				relations = append(relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}

	embeddings := findEmbeddings(namedTypes)

	logger.Info("analysis complete", "relations", len(relations), "embeddings", len(embeddings))

	return &Result{
		Interfaces: ifaces,
		Types:      namedTypes,
		Relations:  relations,
		Embeddings: embeddings,
	}, nil
}

// findEmbeddings links each struct to the named types it embeds, as long as
// the embedded type was itself collected.
func findEmbeddings(namedTypes []TypeDef) []Embedding {
	byKey := make(map[string]*TypeDef, len(namedTypes))
	for i := range namedTypes {
		byKey[typeKey(&namedTypes[i])] = &namedTypes[i]
	}

	var out []Embedding
	for i := range namedTypes {
		t := &namedTypes[i]
		st, ok := t.TypeObj.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for f := 0; f < st.NumFields(); f++ {
			field := st.Field(f)
			if !field.Embedded() {
				continue
			}
			ft := field.Type()
			if ptr, ok := ft.(*types.Pointer); ok {
				ft = ptr.Elem()
			}
			named, ok := ft.(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			base, ok := byKey[named.Obj().Pkg().Path()+"."+named.Obj().Name()]
			if !ok {
				continue
			}
			out = append(out, Embedding{Type: t, Base: base})
		}
	}
	return out
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

// extractTypeMethods lists the methods a user would expect to call on the
// type, promoted ones from embedded fields included.
func extractTypeMethods(named *types.Named, cache *typeutil.MethodSetCache) []MethodSig {
	var methods []MethodSig
	for _, sel := range typeutil.IntuitiveMethodSet(named, cache) {
		fn, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}
		methods = append(methods, MethodSig{
			Name:      fn.Name(),
			Signature: formatSignature(fn),
		})
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

// resolveSourceFile resolves a token position to a file path relative to root.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(root, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
