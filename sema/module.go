package sema

import (
	"sort"
	"strings"

	"github.com/goasn1/semamodel/semaerr"
	"github.com/goasn1/semamodel/token"
)

// Module is a single ASN.1 module definition.
type Module struct {
	Name        string
	TagDefault  Implicitness // always Implicit, Explicit, or Automatic
	Exports     *Exports     // nil if the module has no EXPORTS clause
	Imports     *Imports     // nil if the module has no IMPORTS clause
	Assignments []Assignment

	userTypes map[string]SemaNode // lazily memoised by UserTypes()
}

// Children implements SemaNode.
func (m *Module) Children() []SemaNode {
	var children []SemaNode
	if m.Exports != nil {
		children = appendNode(children, m.Exports)
	}
	if m.Imports != nil {
		children = appendNode(children, m.Imports)
	}
	for _, a := range m.Assignments {
		children = appendNode(children, a)
	}
	return children
}

// UserTypes returns the module's type assignments indexed by
// type_name, computed on first call and cached thereafter.
func (m *Module) UserTypes() map[string]SemaNode {
	if m.userTypes == nil {
		m.userTypes = make(map[string]SemaNode)
		for _, a := range m.Assignments {
			if ta, ok := a.(*TypeAssignment); ok {
				m.userTypes[ta.TypeName] = ta.TypeDecl
			}
		}
	}
	return m.userTypes
}

// String renders the module approximating ASN.1 surface syntax.
func (m *Module) String() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteString(" DEFINITIONS ::=\n")
	b.WriteString("BEGIN\n")

	if m.Exports != nil {
		b.WriteString(m.Exports.String())
		b.WriteString("\n")
	}
	if m.Imports != nil {
		b.WriteString(m.Imports.String())
		b.WriteString("\n")
	}
	for _, a := range m.Assignments {
		b.WriteString(a.String())
		b.WriteString("\n")
	}
	b.WriteString("END")
	return b.String()
}

// Exports is the EXPORTS clause: a sequence of exported symbol names.
type Exports struct {
	Symbols []string
}

func (e *Exports) Children() []SemaNode { return nil }

func (e *Exports) String() string {
	return "EXPORTS " + strings.Join(e.Symbols, ", ") + ";"
}

// GlobalModuleReference names a module an IMPORTS clause draws from,
// optionally pinned to a specific object identifier.
type GlobalModuleReference struct {
	ModuleName string
	Oid        *ObjectIdentifierValue // nil if unpinned
}

func (r GlobalModuleReference) Children() []SemaNode {
	if r.Oid != nil {
		return []SemaNode{r.Oid}
	}
	return nil
}

// key identifies a GlobalModuleReference for import-entry merging and
// deterministic sorting: module name plus the OID's rendered form (or
// "" when unpinned).
func (r GlobalModuleReference) key() string {
	if r.Oid == nil {
		return r.ModuleName
	}
	return r.ModuleName + " " + r.Oid.String()
}

func (r GlobalModuleReference) String() string {
	if r.Oid == nil {
		return r.ModuleName
	}
	return r.ModuleName + " " + r.Oid.String()
}

// importEntry is one merged IMPORTS clause: a module reference plus
// every symbol imported from it.
type importEntry struct {
	Module  GlobalModuleReference
	Symbols []string
}

// Imports is the IMPORTS clause: symbols grouped by source module.
// Entries from multiple import clauses naming the same source module
// are merged, in first-occurrence order.
type Imports struct {
	entries []*importEntry
	byKey   map[string]*importEntry
}

func newImports() *Imports {
	return &Imports{byKey: make(map[string]*importEntry)}
}

// add merges symbols into the entry for module, creating one if this
// is the first clause naming that module.
func (im *Imports) add(module GlobalModuleReference, symbols []string) {
	k := module.key()
	entry, ok := im.byKey[k]
	if !ok {
		entry = &importEntry{Module: module}
		im.byKey[k] = entry
		im.entries = append(im.entries, entry)
	}
	entry.Symbols = append(entry.Symbols, symbols...)
}

// Entries returns the merged import entries in first-occurrence
// order.
func (im *Imports) Entries() []struct {
	Module  GlobalModuleReference
	Symbols []string
} {
	out := make([]struct {
		Module  GlobalModuleReference
		Symbols []string
	}, len(im.entries))
	for i, e := range im.entries {
		out[i] = struct {
			Module  GlobalModuleReference
			Symbols []string
		}{Module: e.Module, Symbols: e.Symbols}
	}
	return out
}

func (im *Imports) Children() []SemaNode {
	var children []SemaNode
	for _, e := range im.entries {
		children = append(children, e.Module.Children()...)
	}
	return children
}

// String renders the IMPORTS clause sorted by module reference, as
// asn1ate/sema.py does ("sorted(self.imports.items())").
func (im *Imports) String() string {
	sorted := append([]*importEntry(nil), im.entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Module.key() < sorted[j].Module.key()
	})

	var b strings.Builder
	b.WriteString("IMPORTS\n")
	for _, e := range sorted {
		b.WriteString("  ")
		b.WriteString(strings.Join(e.Symbols, ", "))
		b.WriteString(" FROM ")
		b.WriteString(e.Module.String())
		b.WriteString("\n")
	}
	b.WriteString(";")
	return b.String()
}

// newModule constructs a Module from a ModuleDefinition token, whose
// Elements are the five-tuple (module_reference, definitive_identifier,
// tag_default, extension_default, module_body).
func (bc *BuildContext) newModule(tok *token.AnnotatedToken) (*Module, error) {
	if tok.Len() != 5 {
		return nil, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "expected 5 elements"}
	}

	name, err := tok.Str(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "module_reference: " + err.Error()}
	}

	tagDefault, err := tagDefaultFromString(tok.OptStr(2))
	if err != nil {
		return nil, err
	}

	body, err := tok.Token(4)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "module_body: " + err.Error()}
	}
	if body.Len() != 3 {
		return nil, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "module_body expects 3 elements"}
	}

	m := &Module{Name: name, TagDefault: tagDefault}

	if exportsTok := body.OptToken(0); exportsTok != nil {
		exp, err := bc.newExports(exportsTok)
		if err != nil {
			return nil, err
		}
		m.Exports = exp
	}
	if importsTok := body.OptToken(1); importsTok != nil {
		imp, err := bc.newImports(importsTok)
		if err != nil {
			return nil, err
		}
		m.Imports = imp
	}

	assignmentToks, err := body.Tokens(2)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "assignments: " + err.Error()}
	}
	for _, at := range assignmentToks {
		node, err := bc.Create(at)
		if err != nil {
			return nil, err
		}
		a, ok := node.(Assignment)
		if !ok {
			return nil, &semaerr.MalformedInputError{TokenType: at.Ty, Detail: "expected a type or value assignment"}
		}
		m.Assignments = append(m.Assignments, a)
	}

	return m, nil
}

func tagDefaultFromString(s string) (Implicitness, error) {
	switch s {
	case "IMPLICIT TAGS":
		return Implicit, nil
	case "EXPLICIT TAGS":
		return Explicit, nil
	case "AUTOMATIC TAGS":
		return Automatic, nil
	case "":
		return Explicit, nil
	default:
		return Unspecified, &semaerr.MalformedInputError{TokenType: token.ModuleDefinition, Detail: "unexpected tag default: " + s}
	}
}

// newExports constructs an Exports from an Exports token, whose
// Elements are the exported symbol name strings.
func (bc *BuildContext) newExports(tok *token.AnnotatedToken) (*Exports, error) {
	e := &Exports{}
	for i := range tok.Elements {
		s, err := tok.Str(i)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.Exports, Detail: err.Error()}
		}
		e.Symbols = append(e.Symbols, s)
	}
	return e, nil
}

// newImports constructs an Imports from an Imports token. Its first
// element is a list of import-clause tokens, each with 3 elements:
// (symbols, module, oid), where symbols is a string list and oid may
// be absent.
func (bc *BuildContext) newImports(tok *token.AnnotatedToken) (*Imports, error) {
	im := newImports()
	clauses, err := tok.Tokens(0)
	if err != nil {
		return nil, &semaerr.MalformedInputError{TokenType: token.Imports, Detail: err.Error()}
	}

	for _, clause := range clauses {
		if clause.Len() != 3 {
			return nil, &semaerr.MalformedInputError{TokenType: token.Imports, Detail: "import clause expects 3 elements"}
		}
		rawSymbols, ok := clause.At(0).([]any)
		if !ok {
			return nil, &semaerr.MalformedInputError{TokenType: token.Imports, Detail: "symbols: not a string list"}
		}
		symbols := make([]string, 0, len(rawSymbols))
		for _, s := range rawSymbols {
			str, ok := s.(string)
			if !ok {
				return nil, &semaerr.MalformedInputError{TokenType: token.Imports, Detail: "symbols: non-string entry"}
			}
			symbols = append(symbols, str)
		}

		moduleTok, err := clause.Token(1)
		if err != nil {
			return nil, &semaerr.MalformedInputError{TokenType: token.Imports, Detail: "module: " + err.Error()}
		}
		oidTok := clause.OptToken(2)
		ref, err := bc.newGlobalModuleReference(moduleTok, oidTok)
		if err != nil {
			return nil, err
		}
		im.add(ref, symbols)
	}
	return im, nil
}

func (bc *BuildContext) newGlobalModuleReference(moduleTok, oidTok *token.AnnotatedToken) (GlobalModuleReference, error) {
	if moduleTok == nil {
		return GlobalModuleReference{}, &semaerr.MalformedInputError{TokenType: token.ModuleReference, Detail: "missing module reference"}
	}
	name, err := moduleTok.Str(0)
	if err != nil {
		return GlobalModuleReference{}, &semaerr.MalformedInputError{TokenType: token.ModuleReference, Detail: err.Error()}
	}
	ref := GlobalModuleReference{ModuleName: name}
	if oidTok != nil {
		node, err := bc.Create(oidTok)
		if err != nil {
			return GlobalModuleReference{}, err
		}
		oid, ok := node.(*ObjectIdentifierValue)
		if !ok {
			return GlobalModuleReference{}, &semaerr.MalformedInputError{TokenType: token.ModuleReference, Detail: "oid is not an ObjectIdentifierValue"}
		}
		ref.Oid = oid
	}
	return ref, nil
}
