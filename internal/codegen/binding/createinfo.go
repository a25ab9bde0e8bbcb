package binding

import (
	"fmt"

	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/scanner"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// FromFactoryMethod records that instances are built by calling the static
// method m of factoryClass.
func FromFactoryMethod(namespace, factoryClass string, m surface.MethodInfo) (*meta.CreateInfo, []meta.Warning) {
	params, warnings := scanner.ExtractParameters(namespace, factoryClass+"."+m.Name, m.Parameters)
	return &meta.CreateInfo{
		CreationType:    meta.FactoryMethod,
		LibraryLocation: factoryClass,
		FactoryMethod:   m.Name,
		Parameters:      params,
	}, warnings
}

// FromConstructor records that instances of c are built with its
// constructor. Only the first overload is used; any others produce a
// warning. A class without constructors gets an empty parameter list.
func FromConstructor(namespace string, c *surface.ClassInfo) (*meta.CreateInfo, []meta.Warning) {
	ci := &meta.CreateInfo{
		CreationType:    meta.Constructor,
		LibraryLocation: c.Name,
		Parameters:      []meta.GeneratedParameter{},
	}
	if len(c.Constructors) == 0 {
		return ci, nil
	}

	var warnings []meta.Warning
	if n := len(c.Constructors); n > 1 {
		warnings = append(warnings, meta.Warning{
			Code:    meta.WarnMultipleConstructors,
			Subject: c.Name,
			Message: fmt.Sprintf("found %d constructors, using the first", n),
		})
	}
	params, ws := scanner.ExtractParameters(namespace, c.Name+".constructor", c.Constructors[0].Parameters)
	ci.Parameters = params
	return ci, append(warnings, ws...)
}
