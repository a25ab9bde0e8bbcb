package manifest

import (
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactbabylon/fibergen/internal/codegen/binding"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "src/generatedCode.ts", want: filepath.Join("src", "generated-code.createinfo.json")},
		{in: "Bindings.ts", want: "bindings.createinfo.json"},
		{in: filepath.Join("out", "fiber_types.ts"), want: filepath.Join("out", "fiber-types.createinfo.json")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.in))
		})
	}
}

func TestGenerate(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	lib, err := surface.Load("../../surface/testdata/babylon.yaml", "")
	require.NoError(t, err)
	unit, err := binding.Build(lib, binding.DefaultOptions(), logger)
	require.NoError(t, err)

	data, err := Generate(logger, unit)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "BABYLON.Nullable<BABYLON.Scene>"`)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "BABYLON", doc.Namespace)
	assert.Equal(t, unit.Tags, doc.Tags)
	assert.NotContains(t, doc.CreateInfo, "Node")
	assert.NotContains(t, doc.CreateInfo, "HemisphericLight")

	box := doc.CreateInfo["Box"]
	require.NotNil(t, box)
	assert.Equal(t, meta.FactoryMethod, box.CreationType)
	assert.Equal(t, "CreateBox", box.FactoryMethod)
	require.Len(t, box.Parameters, 3)
	assert.True(t, box.Parameters[1].Type.IsShape())

	follow := doc.CreateInfo["FollowCamera"]
	require.NotNil(t, follow)
	assert.Equal(t, meta.Constructor, follow.CreationType)
	assert.Equal(t, "FollowCamera", follow.LibraryLocation)
}

func TestGenerateEmptyUnit(t *testing.T) {
	data, err := Generate(slog.New(slog.DiscardHandler), meta.NewUnit("BABYLON", "Fiber"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"generator":"fibergen v0.0.1-dev","namespace":"BABYLON","prefix":"Fiber","tags":[],"createInfo":{}}`, string(data))
}
