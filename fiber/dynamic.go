package fiber

import (
	"fmt"

	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
)

// Props is a loosely typed props object keyed by property name. A missing
// key and a nil value are both absent.
type Props map[string]any

// DynamicHandler evaluates a generated handler declaration directly, with
// the same comparisons the rendered TypeScript performs.
type DynamicHandler struct {
	decl *meta.HandlerDecl
}

var _ PropsHandler[any, Props] = (*DynamicHandler)(nil)

func NewDynamicHandler(decl *meta.HandlerDecl) *DynamicHandler {
	return &DynamicHandler{decl: decl}
}

func (h *DynamicHandler) Name() string { return h.decl.Name }

// GetPropertyUpdates reports changed properties in the declaration's
// comparison order. Unsupported properties never produce updates.
func (h *DynamicHandler) GetPropertyUpdates(_ *CreatedInstance[any], oldProps, newProps Props) []PropertyUpdate {
	var updates []PropertyUpdate
	for _, c := range h.decl.Comparisons {
		if c.Strategy.Kind == diff.Unsupported {
			continue
		}
		if !diff.Changed(c.Strategy.Kind, oldProps[c.Property], newProps[c.Property]) {
			continue
		}
		updates = append(updates, PropertyUpdate{
			PropertyName: c.Property,
			Value:        newProps[c.Property],
			Type:         c.Strategy.Type,
		})
	}
	return updates
}

// ChainFor builds the handler chain of the named wrapper declaration.
func ChainFor(unit *meta.Unit, wrapper string) (*Chain[any, Props], error) {
	d, ok := unit.Lookup(wrapper)
	if !ok {
		return nil, fmt.Errorf("wrapper %s not found", wrapper)
	}
	w, ok := d.(*meta.WrapperDecl)
	if !ok {
		return nil, fmt.Errorf("%s is a %T, not a wrapper", wrapper, d)
	}

	chain := NewChain[any, Props]()
	for _, name := range w.Handlers {
		hd, ok := unit.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("handler %s of %s not found", name, wrapper)
		}
		handler, ok := hd.(*meta.HandlerDecl)
		if !ok {
			return nil, fmt.Errorf("%s is a %T, not a handler", name, hd)
		}
		chain.AddPropsHandler(NewDynamicHandler(handler))
	}
	return chain, nil
}
