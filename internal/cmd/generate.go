package cmd

import (
	"log/slog"

	"github.com/reactbabylon/fibergen/internal/codegen/binding"
	"github.com/reactbabylon/fibergen/internal/codegen/generator"
)

type Generate struct {
	Surface string          `help:"Declaration surface manifest (.json, .yaml or .toml)" env:"FIBERGEN_SURFACE" validate:"required,surfacefile"`
	Output  string          `help:"Generated TypeScript file; the CreateInfo manifest is written next to it" default:"./src/generatedCode.ts" env:"FIBERGEN_OUTPUT" validate:"required"`
	Lang    string          `help:"Output to generate: typescript, manifest, or 'all'" default:"all" enum:"typescript,manifest,all" env:"FIBERGEN_LANG" validate:"oneof=typescript manifest all"`
	Strict  bool            `help:"Fail when generation produces warnings" env:"FIBERGEN_STRICT"`
	Binding binding.Options `embed:"" prefix:"binding."`
}

// Validate is called by Kong after parsing. The binding options are
// validated along with the command's own fields.
func (c *Generate) Validate() error {
	return ValidateStruct(c)
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting fibergen code generation", "surface", c.Surface, "output", c.Output, "lang", c.Lang)

	gen := generator.New(generator.Config{
		Surface: c.Surface,
		Output:  c.Output,
		Strict:  c.Strict,
		Options: c.Binding,
	}, logger)
	if c.Lang == "all" {
		return gen.GenAll()
	}
	return gen.GenerateLang(c.Lang)
}
