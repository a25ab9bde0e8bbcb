package binding

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/reactbabylon/fibergen/internal/codegen/common"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/scanner"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// ErrMissingSymbol is returned when a well-known class is absent from the
// surface.
var ErrMissingSymbol = errors.New("required class not found in surface")

// Build emits the node base, the camera family and the mesh factory products
// into a new unit, in that order.
func Build(r surface.Reader, opts Options, logger *slog.Logger) (*meta.Unit, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lookup := func(role, name string) (*surface.ClassInfo, error) {
		c, ok := r.Class(name)
		if !ok {
			return nil, fmt.Errorf("%s class %q: %w", role, name, ErrMissingSymbol)
		}
		return c, nil
	}
	node, err := lookup("node", opts.NodeClass)
	if err != nil {
		return nil, err
	}
	camera, err := lookup("camera", opts.CameraClass)
	if err != nil {
		return nil, err
	}
	mesh, err := lookup("mesh", opts.MeshClass)
	if err != nil {
		return nil, err
	}
	factory, err := lookup("mesh factory", opts.MeshFactory)
	if err != nil {
		return nil, err
	}

	unit := meta.NewUnit(opts.Namespace, opts.Prefix)
	tags := meta.NewTagRegistry(opts.AllowList...)
	e := newEmitter(opts, unit, logger)

	if err := buildNode(e, node); err != nil {
		return nil, fmt.Errorf("emit %s: %w", node.Name, err)
	}

	cameras, err := buildCameras(r, e, tags, node, camera)
	if err != nil {
		return nil, err
	}

	meshes, err := buildMeshes(r, e, tags, node, mesh, factory)
	if err != nil {
		return nil, err
	}

	unit.Tags = tags.Sorted()
	logger.Info("Built binding unit",
		"cameras", cameras,
		"meshes", meshes,
		"tags", len(unit.Tags),
		"warnings", len(unit.Warnings))
	return unit, nil
}

func buildNode(e *emitter, node *surface.ClassInfo) error {
	prefix := e.opts.Prefix
	if err := e.emitPair(node.Name, node.Name, scanner.EligibleProperties(node), "", true); err != nil {
		return err
	}
	return e.emitWrapper(&meta.WrapperDecl{
		Name:        common.ClassName(prefix, node.Name),
		Target:      node.Name,
		Doc:         generatedDoc(node.Doc),
		RootLibrary: node.Name,
		RootProps:   common.PropsName(prefix, node.Name),
		Handlers:    []string{common.HandlerName(prefix, node.Name)},
	})
}

// buildCameras emits every class derived from camera, bases first. Each
// wrapper chains one handler per level up to the node class.
func buildCameras(r surface.Reader, e *emitter, tags *meta.TagRegistry, node, camera *surface.ClassInfo) (int, error) {
	prefix, ns := e.opts.Prefix, e.opts.Namespace

	ordered, err := scanner.Descendants(r, camera)
	if err != nil {
		return 0, fmt.Errorf("order camera family: %w", err)
	}
	e.logger.Info("Building cameras", "count", len(ordered.Order))

	for _, kv := range ordered.Order {
		c := kv.Val

		parent := ""
		if base := r.BaseClass(c); base != nil && e.unit.Has(common.PropsName(prefix, base.Name)) {
			parent = base.Name
		}
		if err := e.emitPair(c.Name, c.Name, scanner.EligibleProperties(c), parent, true); err != nil {
			return 0, fmt.Errorf("emit %s: %w", c.Name, err)
		}

		var handlers []string
		for _, a := range scanner.Ancestors(r, c, node.Name) {
			handlers = append(handlers, common.HandlerName(prefix, a.Name))
		}

		ci, warnings := FromConstructor(ns, c)
		e.unit.Warn(warnings...)
		targetable := scanner.HasAncestor(r, c, e.opts.TargetableCamera)

		if err := e.emitWrapper(&meta.WrapperDecl{
			Name:        common.ClassName(prefix, c.Name),
			Target:      c.Name,
			Doc:         generatedDoc(c.Doc),
			RootLibrary: camera.Name,
			RootProps:   common.PropsName(prefix, camera.Name),
			Handlers:    handlers,
			CreateInfo:  ci,
			Targetable:  &targetable,
		}); err != nil {
			return 0, fmt.Errorf("emit %s: %w", c.Name, err)
		}
		tags.Add(c.Name)
		e.logger.Debug("Built camera", "name", c.Name, "targetable", targetable)
	}
	return len(ordered.Order), nil
}

// buildMeshes emits one flattened mesh pair and a wrapper per factory
// product. Products share the mesh handler as their only handler.
func buildMeshes(r surface.Reader, e *emitter, tags *meta.TagRegistry, node, mesh, factory *surface.ClassInfo) (int, error) {
	prefix, ns := e.opts.Prefix, e.opts.Namespace

	props := scanner.InheritedProperties(r, mesh, node.Name)
	if err := e.emitPair(mesh.Name, mesh.Name, props, node.Name, false); err != nil {
		return 0, fmt.Errorf("emit %s: %w", mesh.Name, err)
	}

	methods := factory.StaticMethods()
	e.logger.Info("Building meshes", "factory", factory.Name, "methods", len(methods))

	count := 0
	for _, m := range methods {
		product, ok := common.ProductName(m.Name, e.opts.StripPrefixes, e.opts.KeepPrefixes)
		if !ok {
			continue
		}
		name := common.ClassName(prefix, product)
		if e.unit.Has(name) {
			e.unit.Warn(meta.Warning{
				Code:    meta.WarnDuplicateProduct,
				Subject: factory.Name + "." + m.Name,
				Message: fmt.Sprintf("%s is already generated, factory method skipped", name),
			})
			continue
		}

		ci, warnings := FromFactoryMethod(ns, factory.Name, m)
		e.unit.Warn(warnings...)

		if err := e.emitWrapper(&meta.WrapperDecl{
			Name:        name,
			Target:      product,
			Doc:         generatedDoc(m.Doc),
			RootLibrary: mesh.Name,
			RootProps:   common.PropsName(prefix, mesh.Name),
			Handlers:    []string{common.HandlerName(prefix, mesh.Name)},
			CreateInfo:  ci,
		}); err != nil {
			return 0, fmt.Errorf("emit %s: %w", product, err)
		}
		tags.Add(product)
		count++
		e.logger.Debug("Built mesh", "name", product, "factory", m.Name)
	}
	return count, nil
}
