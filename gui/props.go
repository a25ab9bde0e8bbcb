package gui

import (
	"log/slog"

	"github.com/reactbabylon/fibergen/fiber"
)

// ControlProps are the declarative layout props of a control. Nil fields
// are absent.
type ControlProps struct {
	PaddingLeft   *Length `json:"paddingLeft,omitempty"`
	PaddingRight  *Length `json:"paddingRight,omitempty"`
	PaddingTop    *Length `json:"paddingTop,omitempty"`
	PaddingBottom *Length `json:"paddingBottom,omitempty"`
	Width         *Length `json:"width,omitempty"`
	Height        *Length `json:"height,omitempty"`

	HorizontalAlignment *Alignment `json:"horizontalAlignment,omitempty"`
	VerticalAlignment   *Alignment `json:"verticalAlignment,omitempty"`

	ScaleX *float64 `json:"scaleX,omitempty"`
	ScaleY *float64 `json:"scaleY,omitempty"`
}

// Ptr returns a pointer to v, for building props literals.
func Ptr[T any](v T) *T { return &v }

// ControlPropsHandler applies ControlProps to a control.
type ControlPropsHandler struct {
	// Logger receives one debug record per applied property. May be nil.
	Logger *slog.Logger
}

var _ fiber.PropsHandler[*Control, ControlProps] = (*ControlPropsHandler)(nil)

// Handle applies every present prop that differs from the control's
// current value. Empty lengths count as absent; an absent width or height
// resets it to FullSize. Zero alignments and scales are values.
func (h *ControlPropsHandler) Handle(target *Control, props ControlProps) {
	if target == nil {
		return
	}

	h.applyLength(target, "paddingLeft", &target.PaddingLeft, props.PaddingLeft)
	h.applyLength(target, "paddingRight", &target.PaddingRight, props.PaddingRight)
	h.applyLength(target, "paddingTop", &target.PaddingTop, props.PaddingTop)
	h.applyLength(target, "paddingBottom", &target.PaddingBottom, props.PaddingBottom)

	if !h.applyLength(target, "height", &target.Height, props.Height) {
		target.Height = FullSize
	}
	if !h.applyLength(target, "width", &target.Width, props.Width) {
		target.Width = FullSize
	}

	applyValue(h, target, "horizontalAlignment", &target.HorizontalAlignment, props.HorizontalAlignment)
	applyValue(h, target, "verticalAlignment", &target.VerticalAlignment, props.VerticalAlignment)
	applyValue(h, target, "scaleX", &target.ScaleX, props.ScaleX)
	applyValue(h, target, "scaleY", &target.ScaleY, props.ScaleY)
}

// GetPropertyUpdates applies newProps eagerly and reports nothing, so the
// handler can sit in a chain next to generated handlers.
func (h *ControlPropsHandler) GetPropertyUpdates(instance *fiber.CreatedInstance[*Control], _, newProps ControlProps) []fiber.PropertyUpdate {
	if instance != nil {
		h.Handle(instance.Object, newProps)
	}
	return nil
}

// applyLength reports whether value was present.
func (h *ControlPropsHandler) applyLength(target *Control, name string, field *Length, value *Length) bool {
	if value == nil || *value == "" {
		return false
	}
	applyValue(h, target, name, field, value)
	return true
}

func applyValue[T comparable](h *ControlPropsHandler, target *Control, name string, field *T, value *T) {
	if value == nil || *field == *value {
		return
	}
	*field = *value
	if h.Logger != nil {
		h.Logger.Debug("Applied control property", "control", target.Name, "property", name, "value", *value)
	}
}
