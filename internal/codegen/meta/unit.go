package meta

import (
	"errors"
	"fmt"

	"goki.dev/ordmap"

	"github.com/reactbabylon/fibergen/internal/codegen/diff"
)

var (
	// ErrDuplicateDecl is returned when a generated name is registered twice.
	ErrDuplicateDecl = errors.New("declaration already registered")
	// ErrMissingDependency is returned when a declaration references a
	// generated name that has not been registered before it.
	ErrMissingDependency = errors.New("declaration depends on unregistered name")
)

// Decl is one named unit of generated output.
type Decl interface {
	DeclName() string
	// Requires lists generated names that must be emitted earlier.
	Requires() []string
}

// Field is one optional field of a props shape.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Owner string `json:"owner" yaml:"owner"` // declaring library class
}

// PropsDecl is a props shape: a plain data container of optional fields.
type PropsDecl struct {
	Name    string  `json:"name" yaml:"name"`
	Target  string  `json:"target" yaml:"target"`
	Extends string  `json:"extends,omitempty" yaml:"extends,omitempty"`
	Fields  []Field `json:"fields" yaml:"fields"`
}

func (d *PropsDecl) DeclName() string { return d.Name }

func (d *PropsDecl) Requires() []string {
	if d.Extends == "" {
		return nil
	}
	return []string{d.Extends}
}

// Comparison is the change-detection step for one property.
type Comparison struct {
	Property string        `json:"property" yaml:"property"`
	Owner    string        `json:"owner" yaml:"owner"`
	Strategy diff.Strategy `json:"strategy" yaml:"strategy"`
}

// HandlerDecl is a props handler: it compares old and new props of Props and
// reports changed properties in Comparisons order.
type HandlerDecl struct {
	Name        string       `json:"name" yaml:"name"`
	Target      string       `json:"target" yaml:"target"`
	Library     string       `json:"library" yaml:"library"` // library class of the created instance
	Props       string       `json:"props" yaml:"props"`
	Comparisons []Comparison `json:"comparisons" yaml:"comparisons"`
}

func (d *HandlerDecl) DeclName() string   { return d.Name }
func (d *HandlerDecl) Requires() []string { return []string{d.Props} }

// WrapperDecl is a class bundling the handler chain and construction
// metadata for one element.
type WrapperDecl struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
	Doc    string `json:"doc,omitempty" yaml:"doc,omitempty"`
	// RootLibrary and RootProps parameterize HasPropsHandlers<T, U>.
	RootLibrary string `json:"rootLibrary" yaml:"rootLibrary"`
	RootProps   string `json:"rootProps" yaml:"rootProps"`
	// Handlers are handler declaration names, most-derived first.
	Handlers   []string    `json:"handlers" yaml:"handlers"`
	CreateInfo *CreateInfo `json:"createInfo,omitempty" yaml:"createInfo,omitempty"`
	// Targetable is set for camera-family wrappers only.
	Targetable *bool `json:"targetable,omitempty" yaml:"targetable,omitempty"`
}

func (d *WrapperDecl) DeclName() string { return d.Name }

func (d *WrapperDecl) Requires() []string {
	out := make([]string, 0, len(d.Handlers)+1)
	out = append(out, d.Handlers...)
	return append(out, d.RootProps)
}

// Unit is the append-only, ordered set of declarations for one output file.
// Emission order is registration order, and a declaration can only be added
// once everything it requires is present.
type Unit struct {
	Namespace string
	Prefix    string
	// Tags is the sorted element-name vocabulary, filled in once emission ends.
	Tags     []string
	Warnings []Warning

	decls *ordmap.Map[string, Decl]
}

// NewUnit returns an empty unit.
func NewUnit(namespace, prefix string) *Unit {
	return &Unit{
		Namespace: namespace,
		Prefix:    prefix,
		decls:     ordmap.New[string, Decl](),
	}
}

// Add appends d.
func (u *Unit) Add(d Decl) error {
	name := d.DeclName()
	if _, ok := u.decls.IdxByKeyTry(name); ok {
		return fmt.Errorf("%s: %w", name, ErrDuplicateDecl)
	}
	for _, dep := range d.Requires() {
		if _, ok := u.decls.IdxByKeyTry(dep); !ok {
			return fmt.Errorf("%s requires %s: %w", name, dep, ErrMissingDependency)
		}
	}
	u.decls.Add(name, d)
	return nil
}

// Has reports whether a generated name is registered.
func (u *Unit) Has(name string) bool {
	_, ok := u.decls.IdxByKeyTry(name)
	return ok
}

// Lookup returns the declaration registered under name.
func (u *Unit) Lookup(name string) (Decl, bool) {
	idx, ok := u.decls.IdxByKeyTry(name)
	if !ok {
		return nil, false
	}
	return u.decls.Order[idx].Val, true
}

// Decls returns the declarations in emission order.
func (u *Unit) Decls() []Decl {
	out := make([]Decl, 0, len(u.decls.Order))
	for _, kv := range u.decls.Order {
		out = append(out, kv.Val)
	}
	return out
}

// Wrappers returns the wrapper declarations in emission order.
func (u *Unit) Wrappers() []*WrapperDecl {
	var out []*WrapperDecl
	for _, kv := range u.decls.Order {
		if w, ok := kv.Val.(*WrapperDecl); ok {
			out = append(out, w)
		}
	}
	return out
}

// Warn records non-fatal notices.
func (u *Unit) Warn(ws ...Warning) {
	u.Warnings = append(u.Warnings, ws...)
}
