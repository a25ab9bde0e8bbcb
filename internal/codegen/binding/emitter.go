package binding

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/reactbabylon/fibergen/internal/codegen/common"
	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

const generatedComment = "This code has been generated"

type nameSet map[string]bool

func (s nameSet) clone() nameSet {
	out := make(nameSet, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

// emitter appends declarations to one unit and remembers, per generated
// props shape, which fields the shape chain declares and which properties the
// handler chain already diffs.
type emitter struct {
	opts   Options
	table  *diff.Table
	unit   *meta.Unit
	logger *slog.Logger

	fields map[string]nameSet
	diffed map[string]nameSet
}

func newEmitter(opts Options, unit *meta.Unit, logger *slog.Logger) *emitter {
	return &emitter{
		opts:   opts,
		table:  diff.DefaultTable(opts.Namespace, opts.StructuralTypes...),
		unit:   unit,
		logger: logger,
		fields: make(map[string]nameSet),
		diffed: make(map[string]nameSet),
	}
}

// emitPair registers the props shape and handler for target.
//
// Properties are handled in name order. A name seen earlier in the same list
// is skipped with a warning. When chained is set the handler runs after its
// parent's handler in a wrapper chain, so names the parent chain already
// diffs are skipped too. A props field is never redeclared below the shape
// that first declares it.
func (e *emitter) emitPair(target, library string, props []surface.PropertyInfo, parent string, chained bool) error {
	prefix := e.opts.Prefix
	propsDecl := &meta.PropsDecl{
		Name:   common.PropsName(prefix, target),
		Target: target,
		Fields: []meta.Field{},
	}
	handler := &meta.HandlerDecl{
		Name:        common.HandlerName(prefix, target),
		Target:      target,
		Library:     library,
		Props:       propsDecl.Name,
		Comparisons: []meta.Comparison{},
	}

	fields := nameSet{}
	inherited := nameSet{}
	if parent != "" {
		propsDecl.Extends = common.PropsName(prefix, parent)
		fields = e.fields[parent].clone()
		if chained {
			inherited = e.diffed[parent].clone()
		}
	}

	sorted := make([]surface.PropertyInfo, len(props))
	copy(sorted, props)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	own := nameSet{}
	for _, p := range sorted {
		subject := ownerOf(p, library) + "." + p.Name
		if own[p.Name] {
			e.skipDuplicate(subject, fmt.Sprintf("already handled by %s", handler.Name))
			continue
		}
		own[p.Name] = true

		if !fields[p.Name] {
			fields[p.Name] = true
			propsDecl.Fields = append(propsDecl.Fields, meta.Field{Name: p.Name, Type: p.Type, Owner: ownerOf(p, library)})
		}
		if inherited[p.Name] {
			e.skipDuplicate(subject, "already handled by an ancestor handler")
			continue
		}
		inherited[p.Name] = true

		st := e.table.Lookup(p.Type)
		if st.Kind == diff.Unsupported {
			e.logger.Debug("Property type not diffed", "property", subject, "type", st.Type)
		}
		handler.Comparisons = append(handler.Comparisons, meta.Comparison{
			Property: p.Name,
			Owner:    ownerOf(p, library),
			Strategy: st,
		})
	}

	e.fields[target] = fields
	e.diffed[target] = inherited

	if err := e.unit.Add(propsDecl); err != nil {
		return err
	}
	if err := e.unit.Add(handler); err != nil {
		return err
	}
	e.logger.Debug("Emitted props and handler",
		"target", target,
		"fields", len(propsDecl.Fields),
		"comparisons", len(handler.Comparisons))
	return nil
}

func (e *emitter) skipDuplicate(subject, reason string) {
	e.logger.Debug("Skipping duplicate property", "property", subject, "reason", reason)
	e.unit.Warn(meta.Warning{Code: meta.WarnDuplicateProperty, Subject: subject, Message: reason})
}

func (e *emitter) emitWrapper(w *meta.WrapperDecl) error {
	if err := e.unit.Add(w); err != nil {
		return err
	}
	e.logger.Debug("Emitted wrapper", "name", w.Name, "handlers", len(w.Handlers))
	return nil
}

func ownerOf(p surface.PropertyInfo, fallback string) string {
	if p.Owner != "" {
		return p.Owner
	}
	return fallback
}

// generatedDoc appends the generated marker to a source doc comment.
func generatedDoc(doc string) string {
	if doc == "" {
		return generatedComment
	}
	return doc + "\n\n" + generatedComment
}
