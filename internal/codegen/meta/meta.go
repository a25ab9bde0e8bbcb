// Package meta holds the generation-time data model: construction metadata,
// typed warnings, the tag registry and the declarations that make up one
// output unit.
package meta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// CreationType tells the runtime how to instantiate a live engine object.
type CreationType string

const (
	FactoryMethod CreationType = "FactoryMethod"
	Constructor   CreationType = "Constructor"
)

// GeneratedParameter is one constructor or factory parameter as recorded in
// CreateInfo.
type GeneratedParameter struct {
	Name     string    `json:"name" yaml:"name"`
	Type     ParamType `json:"type" yaml:"type"`
	Optional bool      `json:"optional" yaml:"optional"`
}

// ParamType is either a type reference or, for plain option objects, the
// expanded list of member parameters. It serializes as a string or an array.
type ParamType struct {
	Ref     string
	Members []GeneratedParameter
}

// Ref builds a reference ParamType.
func Ref(typeText string) ParamType { return ParamType{Ref: typeText} }

// Shape builds an expanded ParamType.
func Shape(members ...GeneratedParameter) ParamType {
	if members == nil {
		members = []GeneratedParameter{}
	}
	return ParamType{Members: members}
}

// IsShape reports whether the type was expanded into members.
func (t ParamType) IsShape() bool { return t.Members != nil }

func (t ParamType) MarshalJSON() ([]byte, error) {
	if t.IsShape() {
		return MarshalJSON(t.Members, "", "")
	}
	return MarshalJSON(t.Ref, "", "")
}

func (t *ParamType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var members []GeneratedParameter
		if err := json.Unmarshal(data, &members); err != nil {
			return err
		}
		*t = Shape(members...)
		return nil
	}
	var ref string
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("parameter type: %w", err)
	}
	*t = Ref(ref)
	return nil
}

func (t ParamType) MarshalYAML() (any, error) {
	if t.IsShape() {
		return t.Members, nil
	}
	return t.Ref, nil
}

// MarshalJSON encodes v without HTML escaping, so type texts such as
// "BABYLON.Nullable<BABYLON.Scene>" stay readable in generated sources.
// A non-empty indent produces indented output as json.MarshalIndent does.
func MarshalJSON(v any, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// CreateInfo is the reflection metadata the runtime creator uses to build the
// engine object behind a generated wrapper class.
type CreateInfo struct {
	CreationType    CreationType         `json:"creationType" yaml:"creationType"`
	LibraryLocation string               `json:"libraryLocation" yaml:"libraryLocation"`
	FactoryMethod   string               `json:"factoryMethod,omitempty" yaml:"factoryMethod,omitempty"`
	Parameters      []GeneratedParameter `json:"parameters" yaml:"parameters"`
}

// WarningCode classifies a non-fatal generation notice.
type WarningCode string

const (
	WarnUnnamedParameter     WarningCode = "unnamed-parameter"
	WarnMultipleConstructors WarningCode = "multiple-constructors"
	WarnDuplicateProperty    WarningCode = "duplicate-property"
	WarnDuplicateProduct     WarningCode = "duplicate-factory-product"
)

// Warning records data the generator dropped or chose not to resolve.
type Warning struct {
	Code    WarningCode `json:"code" yaml:"code"`
	Subject string      `json:"subject" yaml:"subject"` // e.g. "MeshBuilder.CreateDisc"
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Code, w.Subject, w.Message)
}

// TagRegistry accumulates the element names exposed to the reconciler.
type TagRegistry struct {
	tags map[string]struct{}
}

// NewTagRegistry returns a registry seeded with the given tags.
func NewTagRegistry(initial ...string) *TagRegistry {
	r := &TagRegistry{tags: make(map[string]struct{})}
	for _, t := range initial {
		r.Add(t)
	}
	return r
}

// Add records a tag. Empty tags are ignored.
func (r *TagRegistry) Add(tag string) {
	if tag == "" {
		return
	}
	r.tags[tag] = struct{}{}
}

func (r *TagRegistry) Has(tag string) bool {
	_, ok := r.tags[tag]
	return ok
}

func (r *TagRegistry) Len() int { return len(r.tags) }

// Sorted returns the tags in byte-wise ascending order.
func (r *TagRegistry) Sorted() []string {
	out := make([]string, 0, len(r.tags))
	for t := range r.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
