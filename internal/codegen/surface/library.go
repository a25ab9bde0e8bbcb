package surface

import (
	"errors"
	"fmt"
)

// Library is an in-memory Reader over a fixed set of classes.
type Library struct {
	namespace string
	classes   []*ClassInfo
	byName    map[string]*ClassInfo
	derived   map[string][]*ClassInfo
}

var _ Reader = (*Library)(nil)

// NewLibrary indexes classes. Class names must be non-empty and unique.
// A base naming a class that is not part of the set is kept as declared but
// resolves to no base class.
func NewLibrary(namespace string, classes []ClassInfo) (*Library, error) {
	lib := &Library{
		namespace: namespace,
		byName:    make(map[string]*ClassInfo, len(classes)),
		derived:   make(map[string][]*ClassInfo),
	}

	for i := range classes {
		c := classes[i]
		if c.Name == "" {
			return nil, fmt.Errorf("class #%d: %w", i, errors.New("missing name"))
		}
		if _, dup := lib.byName[c.Name]; dup {
			return nil, fmt.Errorf("class %s: declared more than once", c.Name)
		}
		props := make([]PropertyInfo, len(c.Properties))
		for j, p := range c.Properties {
			p.Owner = c.Name
			props[j] = p
		}
		c.Properties = props

		lib.byName[c.Name] = &c
		lib.classes = append(lib.classes, &c)
	}

	for _, c := range lib.classes {
		if c.Base == "" {
			continue
		}
		if _, ok := lib.byName[c.Base]; ok {
			lib.derived[c.Base] = append(lib.derived[c.Base], c)
		}
	}
	return lib, nil
}

func (l *Library) Namespace() string { return l.namespace }

func (l *Library) Classes() []*ClassInfo { return l.classes }

func (l *Library) Class(name string) (*ClassInfo, bool) {
	c, ok := l.byName[name]
	return c, ok
}

func (l *Library) BaseClass(c *ClassInfo) *ClassInfo {
	if c == nil || c.Base == "" {
		return nil
	}
	return l.byName[c.Base]
}

func (l *Library) DerivedClasses(c *ClassInfo) []*ClassInfo {
	if c == nil {
		return nil
	}
	return l.derived[c.Name]
}
