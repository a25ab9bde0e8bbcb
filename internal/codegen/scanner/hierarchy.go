package scanner

import (
	"fmt"

	"goki.dev/ordmap"

	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// Ancestors returns c followed by its base classes, most-derived first.
// The walk ends at a root class, after the class named stop (when non-empty),
// or when a class would be visited a second time.
func Ancestors(r surface.Reader, c *surface.ClassInfo, stop string) []*surface.ClassInfo {
	var out []*surface.ClassInfo
	seen := make(map[string]bool)
	for cur := c; cur != nil && !seen[cur.Name]; cur = r.BaseClass(cur) {
		seen[cur.Name] = true
		out = append(out, cur)
		if stop != "" && cur.Name == stop {
			break
		}
	}
	return out
}

// InheritedProperties collects the eligible properties of c and its
// ancestors up to stop, most-derived class first. A property re-declared at
// several levels appears once per level; callers decide which one wins.
func InheritedProperties(r surface.Reader, c *surface.ClassInfo, stop string) []surface.PropertyInfo {
	var out []surface.PropertyInfo
	for _, a := range Ancestors(r, c, stop) {
		out = append(out, EligibleProperties(a)...)
	}
	return out
}

// HasAncestor reports whether a class named name is c or one of its ancestors.
func HasAncestor(r surface.Reader, c *surface.ClassInfo, name string) bool {
	for _, a := range Ancestors(r, c, "") {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Descendants enumerates roots and all classes derived from them, depth
// first, recording each class once at its first visit. Because a class is
// only reached through its base, every entry follows its base class; the
// order is verified before returning.
func Descendants(r surface.Reader, roots ...*surface.ClassInfo) (*ordmap.Map[string, *surface.ClassInfo], error) {
	m := ordmap.New[string, *surface.ClassInfo]()

	var visit func(cs []*surface.ClassInfo)
	visit = func(cs []*surface.ClassInfo) {
		for _, c := range cs {
			if c == nil || c.Name == "" {
				continue
			}
			if _, seen := m.IdxByKeyTry(c.Name); seen {
				continue
			}
			m.Add(c.Name, c)
			visit(r.DerivedClasses(c))
		}
	}
	visit(roots)

	if err := checkBaseOrder(r, m); err != nil {
		return nil, err
	}
	return m, nil
}

func checkBaseOrder(r surface.Reader, m *ordmap.Map[string, *surface.ClassInfo]) error {
	for i, kv := range m.Order {
		base := r.BaseClass(kv.Val)
		if base == nil {
			continue
		}
		if j, ok := m.IdxByKeyTry(base.Name); ok && j > i {
			return fmt.Errorf("class %s ordered before its base %s", kv.Key, base.Name)
		}
	}
	return nil
}
