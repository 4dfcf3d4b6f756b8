package i18n

import "strings"

// ScopeKind is a level in the resource hierarchy. More specific kinds
// override less specific ones during resolution.
type ScopeKind int

const (
	ScopeAspect ScopeKind = iota
	ScopeBladeSet
	ScopeBlade
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAspect:
		return "aspect"
	case ScopeBladeSet:
		return "bladeset"
	case ScopeBlade:
		return "blade"
	default:
		return "unknown"
	}
}

// Scope is a node in the Aspect > BladeSet > Blade hierarchy. Each scope owns
// zero or more resource files per locale.
type Scope struct {
	Kind   ScopeKind
	Name   string
	Parent *Scope

	children []*Scope
}

// NewAspect creates a root Aspect scope.
func NewAspect(name string) *Scope {
	return &Scope{Kind: ScopeAspect, Name: name}
}

// AddBladeSet creates a BladeSet scope under an Aspect.
func (s *Scope) AddBladeSet(name string) *Scope {
	child := &Scope{Kind: ScopeBladeSet, Name: name, Parent: s}
	s.children = append(s.children, child)
	return child
}

// AddBlade creates a Blade scope under a BladeSet.
func (s *Scope) AddBlade(name string) *Scope {
	child := &Scope{Kind: ScopeBlade, Name: name, Parent: s}
	s.children = append(s.children, child)
	return child
}

// Children returns the direct child scopes.
func (s *Scope) Children() []*Scope {
	return s.children
}

// Path returns the slash-joined scope path from the root, e.g.
// "default/grid/filter" for a blade.
func (s *Scope) Path() string {
	var parts []string
	for cur := s; cur != nil; cur = cur.Parent {
		parts = append([]string{cur.Name}, parts...)
	}
	return strings.Join(parts, "/")
}

// Chain returns the scope chain from the root Aspect down to this scope,
// in override order (least specific first).
func (s *Scope) Chain() []*Scope {
	var chain []*Scope
	for cur := s; cur != nil; cur = cur.Parent {
		chain = append([]*Scope{cur}, chain...)
	}
	return chain
}

// Walk visits this scope and all descendants depth-first.
func (s *Scope) Walk(fn func(*Scope)) {
	fn(s)
	for _, child := range s.children {
		child.Walk(fn)
	}
}
