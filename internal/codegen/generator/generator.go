package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/reactbabylon/fibergen/internal/codegen/binding"
	"github.com/reactbabylon/fibergen/internal/codegen/generator/manifest"
	"github.com/reactbabylon/fibergen/internal/codegen/generator/typescript"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// ErrWarnings is returned in strict mode when generation produced warnings.
var ErrWarnings = errors.New("generation produced warnings")

// Config is what one generator run needs.
type Config struct {
	Surface string
	Output  string
	Strict  bool
	Options binding.Options
}

type Generator struct {
	cfg    Config
	logger *slog.Logger
	unit   *meta.Unit
}

// LanguageGenerator renders a unit into the content of one file.
type LanguageGenerator func(logger *slog.Logger, unit *meta.Unit) ([]byte, error)

type target struct {
	path   func(output string) string
	render LanguageGenerator
}

var generators = map[string]target{
	"typescript": {path: func(output string) string { return output }, render: typescript.Generate},
	"manifest":   {path: manifest.FileName, render: manifest.Generate},
}

// Languages lists the supported renderer names in sorted order.
func Languages() []string {
	out := make([]string, 0, len(generators))
	for k := range generators {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func New(cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// writeOrder lists renderers in the order their files are written;
// TypeScript comes first.
var writeOrder = []string{"typescript", "manifest"}

// rendered is one output that is ready to be written.
type rendered struct {
	lang string
	path string
	data []byte
}

// GenAll renders every output before writing any of them.
func (g *Generator) GenAll() error {
	outputs := make([]rendered, 0, len(writeOrder))
	for _, lang := range writeOrder {
		out, err := g.render(lang)
		if err != nil {
			return fmt.Errorf("generate %s output: %w", lang, err)
		}
		outputs = append(outputs, out)
	}
	for _, out := range outputs {
		if err := g.write(out); err != nil {
			return fmt.Errorf("generate %s output: %w", out.lang, err)
		}
	}
	return nil
}

func (g *Generator) GenerateLang(lang string) error {
	out, err := g.render(lang)
	if err != nil {
		return err
	}
	return g.write(out)
}

func (g *Generator) render(lang string) (rendered, error) {
	gen, ok := generators[lang]
	if !ok {
		return rendered{}, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}

	g.logger.Info("Generating bindings", "language", lang)

	unit, err := g.Scan()
	if err != nil {
		return rendered{}, err
	}

	data, err := gen.render(g.logger, unit)
	if err != nil {
		return rendered{}, fmt.Errorf("render %s: %w", lang, err)
	}
	return rendered{lang: lang, path: gen.path(g.cfg.Output), data: data}, nil
}

func (g *Generator) write(out rendered) error {
	if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", out.lang, err)
	}

	written, digest, err := WriteFile(out.path, out.data)
	if err != nil {
		return err
	}
	if written {
		g.logger.Info("Bindings generation complete", "language", out.lang, "output", out.path, "bytes", len(out.data), "blake2b", digest)
	} else {
		g.logger.Info("Output unchanged, not rewritten", "language", out.lang, "output", out.path, "blake2b", digest)
	}
	return nil
}

// Scan loads the surface and builds the unit once; later calls reuse it.
func (g *Generator) Scan() (*meta.Unit, error) {
	if g.unit != nil {
		return g.unit, nil
	}

	g.logger.Info("Loading declaration surface", "path", g.cfg.Surface)
	lib, err := surface.Load(g.cfg.Surface, g.cfg.Options.Namespace)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Loaded declaration surface", "namespace", lib.Namespace(), "classes", len(lib.Classes()))

	unit, err := binding.Build(lib, g.cfg.Options, g.logger)
	if err != nil {
		return nil, fmt.Errorf("build bindings: %w", err)
	}

	for _, w := range unit.Warnings {
		g.logger.Warn("Generation warning", "code", w.Code, "subject", w.Subject, "message", w.Message)
	}
	if g.cfg.Strict && len(unit.Warnings) > 0 {
		return nil, fmt.Errorf("%d warning(s) in strict mode: %w", len(unit.Warnings), ErrWarnings)
	}

	g.unit = unit
	return unit, nil
}
