package analyzer

import "unicode"

// Filter keeps the relations for opts.Interface and the embeddings between
// the surviving types, then prunes interfaces and types left without edges.
func Filter(result *Result, opts AnalyzeOptions) *Result {
	filtered := &Result{}

	ifaceSet := make(map[string]bool)
	typeSet := make(map[string]bool)

	for _, rel := range result.Relations {
		if opts.Interface != "" && rel.Interface.Name != opts.Interface {
			continue
		}
		if !opts.IncludeUnexported {
			if isUnexported(rel.Interface.Name) || isUnexported(rel.Type.Name) {
				continue
			}
		}
		filtered.Relations = append(filtered.Relations, rel)
		ifaceSet[ifaceKey(rel.Interface)] = true
		typeSet[typeKey(rel.Type)] = true
	}

	for _, emb := range result.Embeddings {
		if typeSet[typeKey(emb.Type)] && typeSet[typeKey(emb.Base)] {
			filtered.Embeddings = append(filtered.Embeddings, emb)
		}
	}

	for i := range result.Interfaces {
		if ifaceSet[ifaceKey(&result.Interfaces[i])] {
			filtered.Interfaces = append(filtered.Interfaces, result.Interfaces[i])
		}
	}
	for i := range result.Types {
		if typeSet[typeKey(&result.Types[i])] {
			filtered.Types = append(filtered.Types, result.Types[i])
		}
	}

	return filtered
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}

func ifaceKey(iface *InterfaceDef) string {
	return iface.PkgPath + "." + iface.Name
}

func typeKey(typ *TypeDef) string {
	return typ.PkgPath + "." + typ.Name
}
