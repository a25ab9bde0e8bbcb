// Package binding turns a declaration surface into the generated unit: props
// shapes, diff handlers, wrapper classes, construction metadata and the tag
// registry.
package binding

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options selects the classes of interest and names the generated output.
// The kong tags let commands embed it directly.
type Options struct {
	Namespace        string   `help:"Library namespace type references are qualified with" default:"BABYLON" env:"FIBERGEN_NAMESPACE" validate:"required,alphanum"`
	Prefix           string   `help:"Prefix of every generated class name" default:"Fiber" env:"FIBERGEN_PREFIX" validate:"required,alphanum"`
	NodeClass        string   `help:"Universal base class" default:"Node" env:"FIBERGEN_NODE_CLASS" validate:"required"`
	CameraClass      string   `help:"Root of the camera family" default:"Camera" env:"FIBERGEN_CAMERA_CLASS" validate:"required"`
	MeshClass        string   `help:"Concrete mesh root whose properties are flattened" default:"Mesh" env:"FIBERGEN_MESH_CLASS" validate:"required"`
	MeshFactory      string   `help:"Class exposing static mesh factory methods" default:"MeshBuilder" env:"FIBERGEN_MESH_FACTORY" validate:"required"`
	TargetableCamera string   `help:"Ancestor marking a camera as targetable" default:"TargetCamera" env:"FIBERGEN_TARGETABLE_CAMERA" validate:"required"`
	StripPrefixes    []string `help:"Factory verbs removed from the product name" default:"Create" sep:"," env:"FIBERGEN_STRIP_PREFIXES" validate:"min=1,dive,required"`
	KeepPrefixes     []string `help:"Factory verbs kept in the product name" default:"Extrude" sep:"," env:"FIBERGEN_KEEP_PREFIXES" validate:"dive,required"`
	AllowList        []string `help:"Element tags registered without generation" default:"HemisphericLight,DirectionalLight,StandardMaterial" sep:"," env:"FIBERGEN_ALLOW_LIST" validate:"dive,required"`
	StructuralTypes  []string `help:"Library value types diffed with equals()" default:"Vector3,Color3" sep:"," env:"FIBERGEN_STRUCTURAL_TYPES" validate:"dive,required"`
}

// DefaultOptions returns the options used for the Babylon surface.
func DefaultOptions() Options {
	return Options{
		Namespace:        "BABYLON",
		Prefix:           "Fiber",
		NodeClass:        "Node",
		CameraClass:      "Camera",
		MeshClass:        "Mesh",
		MeshFactory:      "MeshBuilder",
		TargetableCamera: "TargetCamera",
		StripPrefixes:    []string{"Create"},
		KeepPrefixes:     []string{"Extrude"},
		AllowList:        []string{"HemisphericLight", "DirectionalLight", "StandardMaterial"},
		StructuralTypes:  []string{"Vector3", "Color3"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the options for missing or malformed values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
