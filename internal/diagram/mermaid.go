package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/goanimals/internal/analyzer"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// GenerateMermaid produces a Mermaid classDiagram string from analysis results.
func GenerateMermaid(result *analyzer.Result, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := make([]analyzer.InterfaceDef, len(result.Interfaces))
	copy(ifaces, result.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool {
		return NodeID(ifaces[i].PkgName, ifaces[i].Name) < NodeID(ifaces[j].PkgName, ifaces[j].Name)
	})

	typs := make([]analyzer.TypeDef, len(result.Types))
	copy(typs, result.Types)
	sort.Slice(typs, func(i, j int) bool {
		return NodeID(typs[i].PkgName, typs[i].Name) < NodeID(typs[j].PkgName, typs[j].Name)
	})

	var edges []string
	for _, emb := range result.Embeddings {
		edges = append(edges, embeddingLine(emb))
	}
	for _, rel := range result.Relations {
		edges = append(edges, relationLine(rel))
	}
	sort.Strings(edges)

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) == 0 && len(typs) == 0 {
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString("    direction LR\n")
	b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
	b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ)
	}

	if len(edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range edges {
		b.WriteString("\n")
		b.WriteString(e)
	}

	b.WriteString("\n")
	for _, iface := range ifaces {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" interfaceStyle", NodeID(iface.PkgName, iface.Name))
	}
	for _, typ := range typs {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" implStyle", NodeID(typ.PkgName, typ.Name))
	}

	return b.String()
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" alone is a reserved word in Mermaid's <<interface>> parsing.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(pkgName + "_" + name)
}

func writeInterfaceBlock(b *strings.Builder, iface analyzer.InterfaceDef, opts DiagramOptions) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(iface.PkgName, iface.Name))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	writeMethodLines(b, iface.Methods, opts)
	b.WriteString("    }")
}

// writeTypeBlock writes a class block with no methods. They're already listed
// on the interface the type implements.
func writeTypeBlock(b *strings.Builder, typ analyzer.TypeDef) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(typ.PkgName, typ.Name))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []analyzer.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(methods[i].Signature))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

func relationLine(rel analyzer.Relation) string {
	typeID := NodeID(rel.Type.PkgName, rel.Type.Name)
	ifaceID := NodeID(rel.Interface.PkgName, rel.Interface.Name)
	if rel.ViaPointer {
		return fmt.Sprintf("    %s --|> %s : *", typeID, ifaceID)
	}
	return fmt.Sprintf("    %s --|> %s", typeID, ifaceID)
}

func embeddingLine(emb analyzer.Embedding) string {
	return fmt.Sprintf("    %s <|-- %s : embeds",
		NodeID(emb.Base.PkgName, emb.Base.Name),
		NodeID(emb.Type.PkgName, emb.Type.Name))
}
