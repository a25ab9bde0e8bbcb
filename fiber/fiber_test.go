package fiber

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactbabylon/fibergen/internal/codegen/binding"
	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

func cameraHandler() *DynamicHandler {
	return NewDynamicHandler(&meta.HandlerDecl{
		Name:    "FiberCameraPropsHandler",
		Library: "Camera",
		Props:   "FiberCameraProps",
		Comparisons: []meta.Comparison{
			{Property: "fov", Owner: "Camera", Strategy: diff.Strategy{Type: "number", Kind: diff.Scalar}},
			{Property: "isIntermediate", Owner: "Camera", Strategy: diff.Strategy{Type: "boolean", Kind: diff.Scalar}},
			{Property: "position", Owner: "Camera", Strategy: diff.Strategy{Type: "BABYLON.Vector3", Kind: diff.Structural}},
			{Property: "viewport", Owner: "Camera", Strategy: diff.Strategy{Type: "BABYLON.Viewport", Kind: diff.Unsupported}},
		},
	})
}

func TestDynamicHandlerScalar(t *testing.T) {
	h := cameraHandler()
	base := Props{"fov": 0.8, "isIntermediate": false, "position": NewVector3(0, 5, -10)}

	tests := []struct {
		name     string
		newProps Props
		want     []PropertyUpdate
	}{
		{
			name:     "identical props",
			newProps: Props{"fov": 0.8, "isIntermediate": false, "position": NewVector3(0, 5, -10)},
			want:     nil,
		},
		{
			name:     "one scalar changed",
			newProps: Props{"fov": 1.2, "isIntermediate": false, "position": NewVector3(0, 5, -10)},
			want:     []PropertyUpdate{{PropertyName: "fov", Value: 1.2, Type: "number"}},
		},
		{
			name:     "scalar cleared",
			newProps: Props{"isIntermediate": false, "position": NewVector3(0, 5, -10)},
			want:     []PropertyUpdate{{PropertyName: "fov", Value: nil, Type: "number"}},
		},
		{
			name:     "explicit false is a value",
			newProps: Props{"fov": 0.8, "isIntermediate": true, "position": NewVector3(0, 5, -10)},
			want:     []PropertyUpdate{{PropertyName: "isIntermediate", Value: true, Type: "boolean"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.GetPropertyUpdates(nil, base, tt.newProps))
		})
	}
}

func TestDynamicHandlerStructural(t *testing.T) {
	h := cameraHandler()
	old := Props{"position": NewVector3(1, 2, 3)}

	assert.Nil(t, h.GetPropertyUpdates(nil, old, Props{"position": NewVector3(1, 2, 3)}), "equal by Equals")
	assert.Nil(t, h.GetPropertyUpdates(nil, old, Props{}), "clearing is not a change")
	assert.Nil(t, h.GetPropertyUpdates(nil, old, Props{"position": (*Vector3)(nil)}), "typed nil is absent")

	moved := NewVector3(1, 2, 4)
	assert.Equal(t,
		[]PropertyUpdate{{PropertyName: "position", Value: moved, Type: "BABYLON.Vector3"}},
		h.GetPropertyUpdates(nil, old, Props{"position": moved}))

	assert.Len(t, h.GetPropertyUpdates(nil, Props{}, Props{"position": &moved}), 1, "first value is a change")
}

func TestDynamicHandlerUnsupported(t *testing.T) {
	h := cameraHandler()
	got := h.GetPropertyUpdates(nil, Props{"viewport": "a"}, Props{"viewport": "b"})
	assert.Nil(t, got)
}

func TestDynamicHandlerOrder(t *testing.T) {
	h := cameraHandler()
	// Caller order does not matter; updates follow the comparison order.
	got := h.GetPropertyUpdates(nil, Props{}, Props{"position": NewVector3(0, 0, 1), "isIntermediate": true, "fov": 1.0})
	require.Len(t, got, 3)
	assert.Equal(t, "fov", got[0].PropertyName)
	assert.Equal(t, "isIntermediate", got[1].PropertyName)
	assert.Equal(t, "position", got[2].PropertyName)
}

type recordingHandler struct {
	calls *[]string
	name  string
}

func (r recordingHandler) GetPropertyUpdates(_ *CreatedInstance[any], _, _ Props) []PropertyUpdate {
	*r.calls = append(*r.calls, r.name)
	return nil
}

func TestChain(t *testing.T) {
	var calls []string
	c := NewChain[any, Props](recordingHandler{&calls, "derived"}, recordingHandler{&calls, "base"})
	c.AddPropsHandler(recordingHandler{&calls, "extra"})

	handlers := c.PropsHandlers()
	assert.Len(t, handlers, 3)
	handlers[0] = nil
	assert.NotNil(t, c.PropsHandlers()[0], "PropsHandlers returns a copy")

	assert.Nil(t, c.Updates(&CreatedInstance[any]{Tag: "FreeCamera"}, Props{}, Props{}))
	assert.Equal(t, []string{"derived", "base", "extra"}, calls)
}

func TestChainFor(t *testing.T) {
	lib, err := surface.Load("../internal/codegen/surface/testdata/babylon.yaml", "")
	require.NoError(t, err)
	unit, err := binding.Build(lib, binding.DefaultOptions(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	chain, err := ChainFor(unit, "FiberFreeCamera")
	require.NoError(t, err)

	var names []string
	for _, h := range chain.PropsHandlers() {
		names = append(names, h.(*DynamicHandler).Name())
	}
	assert.Equal(t, []string{
		"FiberFreeCameraPropsHandler",
		"FiberTargetCameraPropsHandler",
		"FiberCameraPropsHandler",
		"FiberNodePropsHandler",
	}, names)

	updates := chain.Updates(nil,
		Props{"name": "cam", "speed": 1.0, "position": NewVector3(0, 0, 0)},
		Props{"name": "cam", "speed": 2.0, "position": NewVector3(0, 1, 0), "checkCollisions": true})
	var changed []string
	for _, u := range updates {
		changed = append(changed, u.PropertyName)
	}
	assert.Equal(t, []string{"checkCollisions", "speed", "position"}, changed)

	_, err = ChainFor(unit, "FiberNodeProps")
	assert.ErrorContains(t, err, "not a wrapper")
	_, err = ChainFor(unit, "FiberTorus")
	assert.ErrorContains(t, err, "not found")
}

func TestVector3Equals(t *testing.T) {
	v := NewVector3(1, 2, 3)
	w := NewVector3(1, 2, 3)
	assert.True(t, v.Equals(w))
	assert.True(t, v.Equals(&w))
	assert.False(t, v.Equals(NewVector3(1, 2, 3.0001)))
	assert.False(t, v.Equals((*Vector3)(nil)))
	assert.False(t, v.Equals([]float64{1, 2, 3}))
	assert.True(t, v.EqualsWithEpsilon(NewVector3(1, 2, 3.0001), 1e-3))
}

func TestColor3(t *testing.T) {
	c := NewColor3(1, 0.5, 0)
	assert.Equal(t, 0.5, c.G())
	assert.True(t, c.Equals(NewColor3(1, 0.5, 0)))
	assert.False(t, c.Equals(NewColor3(1, 0.5, 0.1)))
	assert.True(t, c.Scale(0.5).Equals(NewColor3(0.5, 0.25, 0)))
	assert.True(t, diff.Changed(diff.Structural, c, NewColor3(0, 0, 0)))
	assert.False(t, diff.Changed(diff.Structural, c, NewColor3(1, 0.5, 0)))
}
