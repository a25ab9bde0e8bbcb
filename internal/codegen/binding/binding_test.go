package binding

import (
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func loadFixture(t *testing.T) *surface.Library {
	t.Helper()
	lib, err := surface.Load("../surface/testdata/babylon.yaml", "")
	require.NoError(t, err)
	return lib
}

func buildFixture(t *testing.T) *meta.Unit {
	t.Helper()
	unit, err := Build(loadFixture(t), DefaultOptions(), discardLogger())
	require.NoError(t, err)
	return unit
}

func lookup[T meta.Decl](t *testing.T, u *meta.Unit, name string) T {
	t.Helper()
	d, ok := u.Lookup(name)
	require.True(t, ok, "missing declaration %s", name)
	typed, ok := d.(T)
	require.True(t, ok, "declaration %s has type %T", name, d)
	return typed
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr bool
	}{
		{name: "defaults", mutate: func(o *Options) {}},
		{name: "empty namespace", mutate: func(o *Options) { o.Namespace = "" }, wantErr: true},
		{name: "dotted prefix", mutate: func(o *Options) { o.Prefix = "Fi.ber" }, wantErr: true},
		{name: "no strip verbs", mutate: func(o *Options) { o.StripPrefixes = nil }, wantErr: true},
		{name: "empty allow-list entry", mutate: func(o *Options) { o.AllowList = []string{"HemisphericLight", ""} }, wantErr: true},
		{name: "empty allow-list", mutate: func(o *Options) { o.AllowList = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromFactoryMethodBox(t *testing.T) {
	lib := loadFixture(t)
	builder, ok := lib.Class("MeshBuilder")
	require.True(t, ok)

	ci, warnings := FromFactoryMethod("BABYLON", "MeshBuilder", builder.StaticMethods()[0])
	assert.Empty(t, warnings)

	data, err := json.Marshal(ci)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"creationType": "FactoryMethod",
		"libraryLocation": "MeshBuilder",
		"factoryMethod": "CreateBox",
		"parameters": [
			{"name": "name", "type": "string", "optional": false},
			{"name": "options", "type": [
				{"name": "size", "type": "number", "optional": true},
				{"name": "height", "type": "number", "optional": true}
			], "optional": true},
			{"name": "scene", "type": "BABYLON.Nullable<BABYLON.Scene>", "optional": true}
		]
	}`, string(data))
}

func TestFromConstructor(t *testing.T) {
	lib := loadFixture(t)

	t.Run("single overload", func(t *testing.T) {
		c, _ := lib.Class("ArcRotateCamera")
		ci, warnings := FromConstructor("BABYLON", c)
		assert.Empty(t, warnings)
		assert.Equal(t, meta.Constructor, ci.CreationType)
		assert.Equal(t, "ArcRotateCamera", ci.LibraryLocation)
		assert.Empty(t, ci.FactoryMethod)
		require.Len(t, ci.Parameters, 6)
		assert.Equal(t, "alpha", ci.Parameters[1].Name)
	})

	t.Run("first of several overloads", func(t *testing.T) {
		c, _ := lib.Class("FollowCamera")
		ci, warnings := FromConstructor("BABYLON", c)
		require.Len(t, warnings, 1)
		assert.Equal(t, meta.WarnMultipleConstructors, warnings[0].Code)
		assert.Equal(t, "FollowCamera", warnings[0].Subject)
		assert.Len(t, ci.Parameters, 3)
	})

	t.Run("no constructor", func(t *testing.T) {
		ci, warnings := FromConstructor("BABYLON", &surface.ClassInfo{Name: "StandardMaterial"})
		assert.Empty(t, warnings)
		assert.NotNil(t, ci.Parameters)
		data, err := json.Marshal(ci)
		require.NoError(t, err)
		assert.JSONEq(t, `{"creationType":"Constructor","libraryLocation":"StandardMaterial","parameters":[]}`, string(data))
	})
}

func TestBuildEmissionOrder(t *testing.T) {
	unit := buildFixture(t)

	var names []string
	for _, d := range unit.Decls() {
		names = append(names, d.DeclName())
	}
	want := []string{
		"FiberNodeProps", "FiberNodePropsHandler", "FiberNode",
		"FiberCameraProps", "FiberCameraPropsHandler", "FiberCamera",
		"FiberTargetCameraProps", "FiberTargetCameraPropsHandler", "FiberTargetCamera",
		"FiberFreeCameraProps", "FiberFreeCameraPropsHandler", "FiberFreeCamera",
		"FiberUniversalCameraProps", "FiberUniversalCameraPropsHandler", "FiberUniversalCamera",
		"FiberArcRotateCameraProps", "FiberArcRotateCameraPropsHandler", "FiberArcRotateCamera",
		"FiberFollowCameraProps", "FiberFollowCameraPropsHandler", "FiberFollowCamera",
		"FiberMeshProps", "FiberMeshPropsHandler",
		"FiberBox", "FiberSphere", "FiberDisc", "FiberExtrudePolygon",
	}
	assert.Equal(t, want, names)
}

func TestBuildTags(t *testing.T) {
	unit := buildFixture(t)
	assert.Equal(t, []string{
		"ArcRotateCamera", "Box", "Camera", "DirectionalLight", "Disc",
		"ExtrudePolygon", "FollowCamera", "FreeCamera", "HemisphericLight",
		"Sphere", "StandardMaterial", "TargetCamera", "UniversalCamera",
	}, unit.Tags)
}

func TestBuildNodeWrapper(t *testing.T) {
	unit := buildFixture(t)
	w := lookup[*meta.WrapperDecl](t, unit, "FiberNode")

	assert.Nil(t, w.CreateInfo)
	assert.Nil(t, w.Targetable)
	assert.Equal(t, []string{"FiberNodePropsHandler"}, w.Handlers)
	assert.Contains(t, w.Doc, "This code has been generated")

	props := lookup[*meta.PropsDecl](t, unit, "FiberNodeProps")
	assert.Empty(t, props.Extends)
	assert.Equal(t, []string{"id", "metadata", "name"}, fieldNames(props))
}

func TestBuildCameraChain(t *testing.T) {
	unit := buildFixture(t)

	uni := lookup[*meta.WrapperDecl](t, unit, "FiberUniversalCamera")
	assert.Equal(t, []string{
		"FiberUniversalCameraPropsHandler",
		"FiberFreeCameraPropsHandler",
		"FiberTargetCameraPropsHandler",
		"FiberCameraPropsHandler",
		"FiberNodePropsHandler",
	}, uni.Handlers)
	assert.Equal(t, "Camera", uni.RootLibrary)
	assert.Equal(t, "FiberCameraProps", uni.RootProps)
	require.NotNil(t, uni.Targetable)
	assert.True(t, *uni.Targetable)
	assert.Equal(t, meta.Constructor, uni.CreateInfo.CreationType)

	cam := lookup[*meta.WrapperDecl](t, unit, "FiberCamera")
	require.NotNil(t, cam.Targetable)
	assert.False(t, *cam.Targetable)
	assert.Equal(t, "This is the base class of all the camera used in the application.\n\nThis code has been generated", cam.Doc)

	props := lookup[*meta.PropsDecl](t, unit, "FiberTargetCameraProps")
	assert.Equal(t, "FiberCameraProps", props.Extends)
	assert.Equal(t, []string{"noRotationConstraint", "rotation", "speed"}, fieldNames(props))
}

func TestBuildCameraHandlerStrategies(t *testing.T) {
	unit := buildFixture(t)
	h := lookup[*meta.HandlerDecl](t, unit, "FiberCameraPropsHandler")

	got := map[string]diff.Kind{}
	var order []string
	for _, c := range h.Comparisons {
		got[c.Property] = c.Strategy.Kind
		order = append(order, c.Property)
	}
	assert.Equal(t, []string{"fov", "isIntermediate", "maxZ", "minZ", "position", "upVector", "viewport"}, order)
	assert.Equal(t, diff.Scalar, got["fov"])
	assert.Equal(t, diff.Scalar, got["isIntermediate"])
	assert.Equal(t, diff.Structural, got["position"])
	assert.Equal(t, diff.Unsupported, got["viewport"])
	assert.Equal(t, "Camera", h.Library)

	target := lookup[*meta.HandlerDecl](t, unit, "FiberTargetCameraPropsHandler")
	for _, c := range target.Comparisons {
		assert.NotEqual(t, "position", c.Property, "position is diffed by the camera handler")
	}
}

func TestBuildFlattenedMesh(t *testing.T) {
	unit := buildFixture(t)

	props := lookup[*meta.PropsDecl](t, unit, "FiberMeshProps")
	assert.Equal(t, "FiberNodeProps", props.Extends)
	assert.Equal(t, []string{
		"billboardMode", "delayLoadState", "isVisible", "material",
		"overrideMaterialSideOrientation", "position", "rotation", "scaling", "visibility",
	}, fieldNames(props))

	h := lookup[*meta.HandlerDecl](t, unit, "FiberMeshPropsHandler")
	var order []string
	for _, c := range h.Comparisons {
		order = append(order, c.Property)
	}
	assert.Equal(t, []string{
		"billboardMode", "delayLoadState", "id", "isVisible", "material", "metadata", "name",
		"overrideMaterialSideOrientation", "position", "rotation", "scaling", "visibility",
	}, order)

	for _, c := range h.Comparisons {
		if c.Property == "scaling" {
			assert.Equal(t, "AbstractMesh", c.Owner, "most-derived declaration wins")
		}
	}

	box := lookup[*meta.WrapperDecl](t, unit, "FiberBox")
	assert.Equal(t, []string{"FiberMeshPropsHandler"}, box.Handlers)
	assert.Nil(t, box.Targetable)
	assert.Equal(t, "CreateBox", box.CreateInfo.FactoryMethod)
	assert.Equal(t, "Creates a box mesh.\n\nThis code has been generated", box.Doc)

	extrude := lookup[*meta.WrapperDecl](t, unit, "FiberExtrudePolygon")
	assert.Equal(t, "ExtrudePolygon", extrude.CreateInfo.FactoryMethod)
	assert.False(t, unit.Has("FiberUpdateSideOrientation"))
	assert.False(t, unit.Has("FiberLines"))
}

func TestBuildWarnings(t *testing.T) {
	unit := buildFixture(t)

	type key struct {
		code    meta.WarningCode
		subject string
	}
	got := map[key]bool{}
	for _, w := range unit.Warnings {
		got[key{w.Code, w.Subject}] = true
	}
	assert.Len(t, unit.Warnings, 4)
	assert.True(t, got[key{meta.WarnDuplicateProperty, "TargetCamera.position"}])
	assert.True(t, got[key{meta.WarnDuplicateProperty, "TransformNode.scaling"}])
	assert.True(t, got[key{meta.WarnMultipleConstructors, "FollowCamera"}])
	assert.True(t, got[key{meta.WarnUnnamedParameter, "MeshBuilder.CreateDisc"}])
}

func TestBuildPropsFieldsDeclaredOnce(t *testing.T) {
	unit := buildFixture(t)

	for _, w := range unit.Wrappers() {
		if w.Targetable == nil {
			continue
		}
		seen := map[string]string{}
		props := lookup[*meta.PropsDecl](t, unit, "Fiber"+w.Target+"Props")
		for {
			for _, f := range props.Fields {
				prev, dup := seen[f.Name]
				assert.False(t, dup, "%s redeclared by %s (first in %s)", f.Name, props.Name, prev)
				seen[f.Name] = props.Name
			}
			if props.Extends == "" {
				break
			}
			props = lookup[*meta.PropsDecl](t, unit, props.Extends)
		}
	}
}

func TestBuildDuplicateProduct(t *testing.T) {
	lib, err := surface.NewLibrary("BABYLON", []surface.ClassInfo{
		{Name: "Node"},
		{Name: "Camera", Base: "Node"},
		{Name: "Mesh", Base: "Node"},
		{Name: "MeshBuilder", Methods: []surface.MethodInfo{
			{Name: "CreateGround", Static: true},
			{Name: "CreateGround", Static: true, Parameters: []surface.ParameterInfo{{Name: "name", Type: "string"}}},
		}},
	})
	require.NoError(t, err)

	unit, err := Build(lib, DefaultOptions(), discardLogger())
	require.NoError(t, err)
	require.Len(t, unit.Warnings, 1)
	assert.Equal(t, meta.WarnDuplicateProduct, unit.Warnings[0].Code)

	ground := lookup[*meta.WrapperDecl](t, unit, "FiberGround")
	assert.Empty(t, ground.CreateInfo.Parameters)
}

func TestBuildMissingSymbol(t *testing.T) {
	lib, err := surface.NewLibrary("BABYLON", []surface.ClassInfo{{Name: "Node"}, {Name: "Camera", Base: "Node"}})
	require.NoError(t, err)

	_, err = Build(lib, DefaultOptions(), discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSymbol))
	assert.Contains(t, err.Error(), `"Mesh"`)
}

func TestBuildInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Prefix = ""
	_, err := Build(loadFixture(t), opts, discardLogger())
	assert.ErrorContains(t, err, "validation failed")
}

func fieldNames(p *meta.PropsDecl) []string {
	var out []string
	for _, f := range p.Fields {
		out = append(out, f.Name)
	}
	return out
}
