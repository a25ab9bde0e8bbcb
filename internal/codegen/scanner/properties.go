package scanner

import (
	"strings"

	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// IsEligible reports whether a property can be bound declaratively: it must
// be an instance, writable property that is neither internal ("_" prefix)
// nor an observable ("on" prefix), and not declared private.
func IsEligible(p surface.PropertyInfo) bool {
	if p.Name == "" || p.Static || p.Readonly || p.Scope == surface.ScopePrivate {
		return false
	}
	return !strings.HasPrefix(p.Name, "_") && !strings.HasPrefix(p.Name, "on")
}

// EligibleProperties returns the eligible properties of c in declaration order.
func EligibleProperties(c *surface.ClassInfo) []surface.PropertyInfo {
	var out []surface.PropertyInfo
	for _, p := range c.Properties {
		if IsEligible(p) {
			out = append(out, p)
		}
	}
	return out
}
