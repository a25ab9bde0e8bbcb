package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reactbabylon/fibergen/internal/codegen/binding"
	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

type Inspect struct {
	Surface string          `help:"Declaration surface manifest (.json, .yaml or .toml)" env:"FIBERGEN_SURFACE" validate:"required,surfacefile"`
	Format  string          `help:"Report format" default:"json" enum:"json,yaml" env:"FIBERGEN_INSPECT_FORMAT" validate:"oneof=json yaml"`
	Output  string          `help:"Report destination, '-' for stdout" default:"-" env:"FIBERGEN_INSPECT_OUTPUT"`
	Binding binding.Options `embed:"" prefix:"binding."`

	out io.Writer
}

// Report is the classified model of a surface, without any rendering.
type Report struct {
	Namespace  string              `json:"namespace" yaml:"namespace"`
	Prefix     string              `json:"prefix" yaml:"prefix"`
	Strategies []diff.Strategy     `json:"strategies" yaml:"strategies"`
	Props      []*meta.PropsDecl   `json:"props" yaml:"props"`
	Handlers   []*meta.HandlerDecl `json:"handlers" yaml:"handlers"`
	Wrappers   []*meta.WrapperDecl `json:"wrappers" yaml:"wrappers"`
	Tags       []string            `json:"tags" yaml:"tags"`
	Warnings   []meta.Warning      `json:"warnings" yaml:"warnings"`
}

func (c *Inspect) Validate() error {
	return ValidateStruct(c)
}

// Run is called by Kong when the inspect command is executed.
func (c *Inspect) Run(logger *slog.Logger) error {
	lib, err := surface.Load(c.Surface, c.Binding.Namespace)
	if err != nil {
		return err
	}
	unit, err := binding.Build(lib, c.Binding, logger)
	if err != nil {
		return fmt.Errorf("build bindings: %w", err)
	}
	report := NewReport(unit, diff.DefaultTable(c.Binding.Namespace, c.Binding.StructuralTypes...))

	var data []byte
	switch c.Format {
	case "yaml":
		data, err = yaml.Marshal(report)
	default:
		data, err = meta.MarshalJSON(report, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	w := c.out
	if w == nil {
		if c.Output == "" || c.Output == "-" {
			w = os.Stdout
		} else {
			f, err := os.Create(c.Output)
			if err != nil {
				return fmt.Errorf("create report file: %w", err)
			}
			defer f.Close()
			w = f
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Debug("Wrote inspection report", "format", c.Format, "output", c.Output, "warnings", len(report.Warnings))
	return nil
}

// NewReport groups the declarations of unit by kind.
func NewReport(unit *meta.Unit, table *diff.Table) *Report {
	r := &Report{
		Namespace:  unit.Namespace,
		Prefix:     unit.Prefix,
		Strategies: table.Entries(),
		Tags:       unit.Tags,
		Warnings:   unit.Warnings,
	}
	for _, d := range unit.Decls() {
		switch d := d.(type) {
		case *meta.PropsDecl:
			r.Props = append(r.Props, d)
		case *meta.HandlerDecl:
			r.Handlers = append(r.Handlers, d)
		case *meta.WrapperDecl:
			r.Wrappers = append(r.Wrappers, d)
		}
	}
	return r
}
