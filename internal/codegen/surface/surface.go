// Package surface models the slice of a 3D-engine type-declaration surface the
// generator consumes: classes, their inheritance links, properties, static
// methods and constructors with their parameter shapes.
//
// The declaration parser itself lives outside this module. Its output reaches
// the generator either as a hand-built Library (tests) or as a manifest file
// decoded by Load.
package surface

import "strings"

// Scope is the declared visibility of a class member.
type Scope string

const (
	ScopePublic    Scope = "public"
	ScopeProtected Scope = "protected"
	ScopePrivate   Scope = "private"
)

// ClassInfo describes one declared class.
type ClassInfo struct {
	Name         string            `json:"name" yaml:"name" toml:"name"`
	Doc          string            `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Base         string            `json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"` // empty for a root class
	Properties   []PropertyInfo    `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Methods      []MethodInfo      `json:"methods,omitempty" yaml:"methods,omitempty" toml:"methods,omitempty"`
	Constructors []ConstructorInfo `json:"constructors,omitempty" yaml:"constructors,omitempty" toml:"constructors,omitempty"`
}

// PropertyInfo describes a declared property.
type PropertyInfo struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Type     string `json:"type" yaml:"type" toml:"type"` // type text as printed by the checker, e.g. "BABYLON.Vector3"
	Static   bool   `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Readonly bool   `json:"readonly,omitempty" yaml:"readonly,omitempty" toml:"readonly,omitempty"`
	Scope    Scope  `json:"scope,omitempty" yaml:"scope,omitempty" toml:"scope,omitempty"`

	// Owner is the name of the declaring class. It is filled in by NewLibrary.
	Owner string `json:"-" yaml:"-" toml:"-"`
}

// MethodInfo describes a declared method.
type MethodInfo struct {
	Name       string          `json:"name" yaml:"name" toml:"name"`
	Static     bool            `json:"static,omitempty" yaml:"static,omitempty" toml:"static,omitempty"`
	Doc        string          `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Parameters []ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// ConstructorInfo describes one constructor overload.
type ConstructorInfo struct {
	Parameters []ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// ParameterInfo describes a formal parameter, or a member of a plain object
// type when it appears in another ParameterInfo's Members.
//
// Members is non-empty when the declared type's symbol exposes members, as
// with an inline options object like `{ size?: number; height?: number }`.
type ParameterInfo struct {
	Name     string          `json:"name" yaml:"name" toml:"name"`
	Type     string          `json:"type" yaml:"type" toml:"type"`
	Optional bool            `json:"optional,omitempty" yaml:"optional,omitempty" toml:"optional,omitempty"`
	Members  []ParameterInfo `json:"members,omitempty" yaml:"members,omitempty" toml:"members,omitempty"`
}

// Reader is the capability the generator needs from a parsed declaration tree.
type Reader interface {
	// Namespace is the library namespace type references are qualified with.
	Namespace() string
	// Classes returns every class in declaration order.
	Classes() []*ClassInfo
	// Class looks up a class by name.
	Class(name string) (*ClassInfo, bool)
	// BaseClass returns the declared base of c, or nil for a root class.
	BaseClass(c *ClassInfo) *ClassInfo
	// DerivedClasses returns the classes directly extending c in declaration order.
	DerivedClasses(c *ClassInfo) []*ClassInfo
}

// StaticMethods returns the static methods of c in declaration order.
func (c *ClassInfo) StaticMethods() []MethodInfo {
	var out []MethodInfo
	for _, m := range c.Methods {
		if m.Static {
			out = append(out, m)
		}
	}
	return out
}

// InNamespace reports whether a type text references a symbol of namespace ns,
// e.g. "BABYLON.Scene" or "BABYLON.Nullable<BABYLON.Scene>".
func InNamespace(typeText, ns string) bool {
	return ns != "" && strings.HasPrefix(typeText, ns)
}
