// Package semamodel builds a semantic node tree — modules, type and
// value assignments, and every ASN.1 type and value form they can
// contain — from a tree of parser tokens, then offers cross-module
// resolution and dependency-ordering on top of it.
//
// Call [BuildSemanticModel] with the tokens for one or more
// ModuleDefinitions to get a [Model]; use its ResolveTypeDecl,
// ResolveSelectionType, TopologicalSort, and DependencySort methods to
// work with the result.
package semamodel

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/goasn1/semamodel/internal/logging"
	"github.com/goasn1/semamodel/sema"
	"github.com/goasn1/semamodel/token"
)

// Option configures BuildSemanticModel.
type Option func(*buildConfig)

type buildConfig struct {
	logger           *slog.Logger
	counterSeed      uint64
	strictReferences bool
}

// WithLogger sets the logger BuildSemanticModel traces construction
// through. If not set, no logging occurs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) { c.logger = logger }
}

// WithCounterSeed sets the starting value of the "unnamedN" identifier
// counter. Two builds given the same seed and the same tokens produce
// identical auto-generated identifiers.
func WithCounterSeed(seed uint64) Option {
	return func(c *buildConfig) { c.counterSeed = seed }
}

// WithStrictReferences enables a visited-set guard in ResolveTypeDecl
// that returns CyclicReferencesError instead of looping forever on a
// DefinedType chain that cycles back on itself. Off by default,
// matching the literal base semantics (see DESIGN.md).
func WithStrictReferences(strict bool) Option {
	return func(c *buildConfig) { c.strictReferences = strict }
}

// Model is the built semantic tree for one or more modules, plus the
// cross-module index ResolveTypeDecl and ResolveSelectionType need.
type Model struct {
	Modules []*sema.Module

	byName map[string]*sema.Module
	strict bool
}

// Module returns the module named name, if one was built.
func (m *Model) Module(name string) (*sema.Module, bool) {
	mod, ok := m.byName[name]
	return mod, ok
}

// ResolveTypeDecl follows node's DefinedType chain to its underlying
// declaration, starting the search in home (see sema.ResolveTypeDecl).
func (m *Model) ResolveTypeDecl(node sema.SemaNode, home *sema.Module) (sema.SemaNode, error) {
	return sema.ResolveTypeDecl(node, home, m.byName, m.strict)
}

// ResolveSelectionType resolves a SelectionType node to the type of
// the alternative it names (see sema.ResolveSelectionType).
func (m *Model) ResolveSelectionType(node sema.SemaNode, home *sema.Module) (sema.SemaNode, error) {
	return sema.ResolveSelectionType(node, home, m.byName, m.strict)
}

// TopologicalSort orders moduleName's assignments dependency-first.
// The underlying sema.TopologicalSort accepts any []sema.Assignment,
// so callers needing a cross-module or filtered ordering can call it
// directly instead of going through a Model method.
func (m *Model) TopologicalSort(moduleName string) ([]sema.Assignment, error) {
	mod, ok := m.byName[moduleName]
	if !ok {
		return nil, &UnknownModuleError{ModuleName: moduleName, Searched: m.moduleNames()}
	}
	return sema.TopologicalSort(mod.Assignments)
}

// DependencySort partitions moduleName's assignments into strongly
// connected components, dependency-first.
func (m *Model) DependencySort(moduleName string) ([][]sema.Assignment, error) {
	mod, ok := m.byName[moduleName]
	if !ok {
		return nil, &UnknownModuleError{ModuleName: moduleName, Searched: m.moduleNames()}
	}
	return sema.DependencySort(mod.Assignments), nil
}

func (m *Model) moduleNames() []string {
	names := make([]string, 0, len(m.byName))
	for n := range m.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// BuildSemanticModel builds a Model from the tokens of one or more
// ModuleDefinitions. Every module whose TagDefault is AUTOMATIC TAGS
// has ConstructedType.AutoTag applied to every constructed type it
// contains before the Model is returned.
func BuildSemanticModel(moduleTokens []*token.AnnotatedToken, opts ...Option) (*Model, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	bc := sema.NewBuildContext(cfg.counterSeed).WithLogger(logging.Logger{L: cfg.logger})

	m := &Model{byName: make(map[string]*sema.Module, len(moduleTokens)), strict: cfg.strictReferences}
	for _, tok := range moduleTokens {
		node, err := bc.Create(tok)
		if err != nil {
			return nil, err
		}
		mod, ok := node.(*sema.Module)
		if !ok {
			return nil, &MalformedInputError{TokenType: tok.Ty, Detail: fmt.Sprintf("expected a module definition, got %T", node)}
		}
		m.Modules = append(m.Modules, mod)
		m.byName[mod.Name] = mod
	}

	for _, mod := range m.Modules {
		if mod.TagDefault == sema.Automatic {
			sema.AutoTagModule(mod)
		}
	}

	return m, nil
}
