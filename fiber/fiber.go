// Package fiber mirrors, in Go, the runtime contracts the generated
// TypeScript bindings are written against: created instances, property
// updates, props handlers and handler chains.
package fiber

// PropertyUpdate is one changed property to push into a live engine object.
type PropertyUpdate struct {
	PropertyName string `json:"propertyName"`
	Value        any    `json:"value"`
	Type         string `json:"type"`
}

// CreatedInstance wraps the live engine object a component created.
type CreatedInstance[T any] struct {
	Object T
	// Tag is the element name the instance was created for, e.g. "Box".
	Tag string
}

// PropsHandler computes the updates between two renders of one instance.
// GetPropertyUpdates returns nil when nothing changed.
type PropsHandler[T, U any] interface {
	GetPropertyUpdates(instance *CreatedInstance[T], oldProps, newProps U) []PropertyUpdate
}

// HasPropsHandlers exposes an extensible, ordered handler list.
type HasPropsHandlers[T, U any] interface {
	PropsHandlers() []PropsHandler[T, U]
	AddPropsHandler(h PropsHandler[T, U])
}
