package fiber

import "slices"

// Chain is an ordered list of props handlers, most-derived first.
type Chain[T, U any] struct {
	handlers []PropsHandler[T, U]
}

var _ HasPropsHandlers[any, Props] = (*Chain[any, Props])(nil)

func NewChain[T, U any](handlers ...PropsHandler[T, U]) *Chain[T, U] {
	return &Chain[T, U]{handlers: slices.Clone(handlers)}
}

// PropsHandlers returns a copy of the handler list.
func (c *Chain[T, U]) PropsHandlers() []PropsHandler[T, U] {
	return slices.Clone(c.handlers)
}

// AddPropsHandler appends h; it runs after every handler already present.
func (c *Chain[T, U]) AddPropsHandler(h PropsHandler[T, U]) {
	c.handlers = append(c.handlers, h)
}

// Updates runs every handler in order and concatenates their updates.
// It returns nil when no handler reported a change.
func (c *Chain[T, U]) Updates(instance *CreatedInstance[T], oldProps, newProps U) []PropertyUpdate {
	var out []PropertyUpdate
	for _, h := range c.handlers {
		out = append(out, h.GetPropertyUpdates(instance, oldProps, newProps)...)
	}
	return out
}
