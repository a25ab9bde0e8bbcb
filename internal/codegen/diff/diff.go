// Package diff holds the comparison policy deciding, per declared property
// type, whether and how a property change is detected between two renders.
package diff

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Kind is a comparison strategy.
type Kind int

const (
	// Unsupported properties are declared on props shapes but never diffed.
	Unsupported Kind = iota
	// Scalar values change when old !== new.
	Scalar
	// Structural values change when the new value is present and the old one
	// is absent or not equal by the value's own Equals method.
	Structural
)

var kindNames = map[Kind]string{
	Unsupported: "unsupported",
	Scalar:      "scalar",
	Structural:  "structural",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown comparison kind %q", string(b))
}

// Strategy is the comparison chosen for one declared type.
type Strategy struct {
	Type string `json:"type" yaml:"type"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Table maps normalized type identities to strategies. Types not registered
// resolve to Unsupported.
type Table struct {
	kinds map[string]Kind
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{kinds: make(map[string]Kind)}
}

// DefaultTable registers boolean, number and string as scalars and the given
// namespace-local value types (Vector3 and Color3 when none are given) as
// structural.
func DefaultTable(namespace string, structural ...string) *Table {
	t := NewTable()
	for _, s := range []string{"boolean", "number", "string"} {
		t.Register(s, Scalar)
	}
	if len(structural) == 0 {
		structural = []string{"Vector3", "Color3"}
	}
	for _, s := range structural {
		t.Register(Qualify(namespace, s), Structural)
	}
	return t
}

// Qualify prefixes name with namespace, e.g. ("BABYLON", "Vector3") -> "BABYLON.Vector3".
func Qualify(namespace, name string) string {
	if namespace == "" || strings.HasPrefix(name, namespace+".") {
		return name
	}
	return namespace + "." + name
}

// Register sets the strategy for a type, replacing any previous entry.
func (t *Table) Register(typeName string, k Kind) {
	t.kinds[Normalize(typeName)] = k
}

// Lookup returns the strategy for a declared type text.
func (t *Table) Lookup(typeText string) Strategy {
	key := Normalize(typeText)
	return Strategy{Type: key, Kind: t.kinds[key]}
}

// Entries lists the registered strategies sorted by type.
func (t *Table) Entries() []Strategy {
	out := make([]Strategy, 0, len(t.kinds))
	for name, k := range t.kinds {
		out = append(out, Strategy{Type: name, Kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Normalize trims the type text and collapses inner whitespace.
func Normalize(typeText string) string {
	return strings.Join(strings.Fields(typeText), " ")
}

// Equaler is implemented by structural value types.
type Equaler interface {
	Equals(other any) bool
}

// Changed evaluates kind k for one property. It mirrors the generated
// TypeScript comparison so the policy can be exercised from Go.
func Changed(k Kind, oldValue, newValue any) bool {
	switch k {
	case Scalar:
		return !scalarEqual(oldValue, newValue)
	case Structural:
		if Absent(newValue) {
			return false
		}
		if Absent(oldValue) {
			return true
		}
		if e, ok := oldValue.(Equaler); ok {
			return !e.Equals(newValue)
		}
		return !reflect.DeepEqual(oldValue, newValue)
	default:
		return false
	}
}

// Absent reports whether v is nil or a nil pointer, map, slice or interface.
func Absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func scalarEqual(a, b any) bool {
	if Absent(a) || Absent(b) {
		return Absent(a) && Absent(b)
	}
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return x == y
		}
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// number widens any Go numeric value to float64; JavaScript has one number type.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
