package sema

import (
	"sort"

	"github.com/goasn1/semamodel/internal/oidtrie"
	"github.com/goasn1/semamodel/semaerr"
)

// importedModuleFor returns the module a bare (unqualified) symbol
// was imported from, by scanning m's Imports entries. Returns nil,
// nil if symbol is not imported (the caller should then assume it is
// local to m).
func (m *Module) importedModuleFor(symbol string, modules map[string]*Module) (*Module, error) {
	if m.Imports == nil {
		return nil, nil
	}
	for _, e := range m.Imports.Entries() {
		for _, s := range e.Symbols {
			if s != symbol {
				continue
			}
			tm, ok := modules[e.Module.ModuleName]
			if !ok {
				return nil, &semaerr.UnknownModuleError{ModuleName: e.Module.ModuleName, Searched: moduleNames(modules)}
			}
			return tm, nil
		}
	}
	return nil, nil
}

func moduleNames(modules map[string]*Module) []string {
	names := make([]string, 0, len(modules))
	for n := range modules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func suggestTypeName(m *Module, want string) string {
	names := make([]string, 0, len(m.UserTypes()))
	for name := range m.UserTypes() {
		names = append(names, name)
	}
	return suggestAmong(names, want)
}

// suggestAmong returns the closest name to want among names, using a
// throwaway oidtrie.Index (see internal/oidtrie for the matching rule).
func suggestAmong(names []string, want string) string {
	idx := oidtrie.New()
	idx.AddAll(names)
	return idx.Suggest(want)
}

// ResolveTypeDecl follows a chain of *DefinedType references starting
// at node, crossing module boundaries through IMPORTS, until it
// reaches a non-DefinedType declaration. home is the module node was
// found in.
//
// When strict is true, a module-qualified symbol visited twice raises
// CyclicReferencesError instead of looping forever — this is opt-in;
// the unguarded default matches the literal base resolution walk (see
// DESIGN.md for why it stays unguarded unless a caller opts in).
func ResolveTypeDecl(node SemaNode, home *Module, modules map[string]*Module, strict bool) (SemaNode, error) {
	current := node
	currentModule := home
	visited := map[string]bool{}

	for {
		dt, ok := current.(*DefinedType)
		if !ok {
			return current, nil
		}

		targetModule := currentModule
		if dt.ModuleName != "" {
			tm, ok := modules[dt.ModuleName]
			if !ok {
				return nil, &semaerr.UnknownModuleError{ModuleName: dt.ModuleName, Searched: moduleNames(modules)}
			}
			targetModule = tm
		} else if _, local := currentModule.UserTypes()[dt.TypeName_]; !local {
			tm, err := currentModule.importedModuleFor(dt.TypeName_, modules)
			if err != nil {
				return nil, err
			}
			if tm != nil {
				targetModule = tm
			}
		}

		decl, ok := targetModule.UserTypes()[dt.TypeName_]
		if !ok {
			return nil, &semaerr.UnknownReferenceError{
				ModuleName: targetModule.Name,
				TypeName:   dt.TypeName_,
				Suggestion: suggestTypeName(targetModule, dt.TypeName_),
			}
		}

		if strict {
			key := targetModule.Name + "." + dt.TypeName_
			if visited[key] {
				return nil, &semaerr.CyclicReferencesError{Residual: map[string][]string{key: {key}}}
			}
			visited[key] = true
		}

		current = decl
		currentModule = targetModule
	}
}
