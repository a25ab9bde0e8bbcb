package typescript

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/reactbabylon/fibergen/internal/codegen/common"
	"github.com/reactbabylon/fibergen/internal/codegen/diff"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
)

const unitTemplate = `{{.Header}}import { CreatedInstance, PropertyUpdate } from "./render";
import {{.Namespace}} from "babylonjs";

export interface PropsHandler<T, U> {
  getPropertyUpdates(createdInstance: CreatedInstance<T>, oldProps: U, newProps: U): PropertyUpdate[] | null;
}

export interface HasPropsHandlers<T, U> {
  getPropsHandlers(): PropsHandler<T, U>[];
  addPropsHandler(propHandler: PropsHandler<T, U>): void;
}
{{range .Decls}}{{with .Props}}{{template "props" .}}{{end}}{{with .Handler}}{{template "handler" .}}{{end}}{{with .Wrapper}}{{template "wrapper" .}}{{end}}{{end}}
{{range .Tags}}export const {{.}}: string = {{tsQuote .}};
{{end}}`

const propsTemplate = `{{define "props"}}
export class {{.Name}}{{if .Extends}} extends {{.Extends}}{{end}} {
{{- range .Fields}}
  {{.Name}}?: {{.Type}};
{{- end}}
}
{{end}}`

const handlerTemplate = `{{define "handler"}}
export class {{.Name}} implements PropsHandler<{{.Library}}, {{.Props}}> {
  getPropertyUpdates(createdInstance: CreatedInstance<{{.Library}}>, oldProps: {{.Props}}, newProps: {{.Props}}): PropertyUpdate[] | null {
    // generated code
    let updates: PropertyUpdate[] = [];
{{- range .Checks}}
{{- if eq .Kind "scalar"}}
    // {{.Owner}}.{{.Property}} of type {{tsQuote .Type}}:
    if (oldProps.{{.Property}} !== newProps.{{.Property}}) {
{{- template "update" .}}
    }
{{- else if eq .Kind "structural"}}
    // {{.Owner}}.{{.Property}} of type {{tsQuote .Type}} uses object equals to find diffs:
    if (newProps.{{.Property}} && (!oldProps.{{.Property}} || !oldProps.{{.Property}}.equals(newProps.{{.Property}}))) {
{{- template "update" .}}
    }
{{- else}}
    // unsupported: {{.Owner}}.{{.Property}} of type {{tsQuote .Type}} is not diffed.
{{- end}}
{{- end}}
    return updates.length == 0 ? null : updates;
  }
}
{{end}}`

const updateTemplate = `{{define "update"}}
      updates.push({
        propertyName: {{tsQuote .Property}},
        value: newProps.{{.Property}},
        type: {{tsQuote .Type}}
      });
{{- end}}`

const wrapperTemplate = `{{define "wrapper"}}
/**
{{- range splitList "\n" .Doc}}
 *{{if .}} {{.}}{{end}}
{{- end}}
 */
export class {{.Name}} implements HasPropsHandlers<{{.RootLibrary}}, {{.RootProps}}> {
  private propsHandlers: PropsHandler<{{.RootLibrary}}, {{.RootProps}}>[];
{{- if .Targetable}}
  public readonly isTargetable: boolean = {{.Targetable}};
{{- end}}
{{- if .CreateInfo}}
  public static readonly CreateInfo = {{.CreateInfo}};
{{- end}}

  constructor() {
    this.propsHandlers = [
{{- range $i, $h := .Handlers}}{{if $i}},{{end}}
      new {{$h}}()
{{- end}}
    ];
  }

  getPropsHandlers(): PropsHandler<{{.RootLibrary}}, {{.RootProps}}>[] {
    return this.propsHandlers;
  }

  addPropsHandler(propHandler: PropsHandler<{{.RootLibrary}}, {{.RootProps}}>): void {
    this.propsHandlers.push(propHandler);
  }
}
{{end}}`

var tmpl = template.Must(template.New("unit").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{"tsQuote": tsQuote}).
	Parse(unitTemplate + propsTemplate + handlerTemplate + updateTemplate + wrapperTemplate))

type checkView struct {
	Property string
	Owner    string
	Type     string
	Kind     string
}

type handlerView struct {
	Name    string
	Library string
	Props   string
	Checks  []checkView
}

type wrapperView struct {
	Name        string
	Doc         string
	RootLibrary string
	RootProps   string
	Handlers    []string
	Targetable  string
	CreateInfo  string
}

type declView struct {
	Props   *meta.PropsDecl
	Handler *handlerView
	Wrapper *wrapperView
}

type unitView struct {
	Header    string
	Namespace string
	Decls     []declView
	Tags      []string
}

// Generate renders unit as one TypeScript module.
func Generate(logger *slog.Logger, unit *meta.Unit) ([]byte, error) {
	header, err := common.FileHeader("//")
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	view := unitView{Header: header, Namespace: unit.Namespace, Tags: unit.Tags}
	for _, d := range unit.Decls() {
		switch d := d.(type) {
		case *meta.PropsDecl:
			view.Decls = append(view.Decls, declView{Props: d})
		case *meta.HandlerDecl:
			view.Decls = append(view.Decls, declView{Handler: handlerOf(unit.Namespace, d)})
		case *meta.WrapperDecl:
			w, err := wrapperOf(unit.Namespace, d)
			if err != nil {
				return nil, err
			}
			view.Decls = append(view.Decls, declView{Wrapper: w})
		default:
			return nil, fmt.Errorf("unsupported declaration %T", d)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	logger.Debug("Rendered TypeScript unit", "declarations", len(view.Decls), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func handlerOf(ns string, d *meta.HandlerDecl) *handlerView {
	h := &handlerView{
		Name:    d.Name,
		Library: diff.Qualify(ns, d.Library),
		Props:   d.Props,
	}
	for _, c := range d.Comparisons {
		h.Checks = append(h.Checks, checkView{
			Property: c.Property,
			Owner:    diff.Qualify(ns, c.Owner),
			Type:     c.Strategy.Type,
			Kind:     c.Strategy.Kind.String(),
		})
	}
	return h
}

func wrapperOf(ns string, d *meta.WrapperDecl) (*wrapperView, error) {
	w := &wrapperView{
		Name:        d.Name,
		Doc:         sanitizeDoc(d.Doc),
		RootLibrary: diff.Qualify(ns, d.RootLibrary),
		RootProps:   d.RootProps,
		Handlers:    d.Handlers,
	}
	if d.Targetable != nil {
		w.Targetable = fmt.Sprintf("%t", *d.Targetable)
	}
	if d.CreateInfo != nil {
		data, err := meta.MarshalJSON(d.CreateInfo, "  ", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode CreateInfo of %s: %w", d.Name, err)
		}
		w.CreateInfo = string(data)
	}
	return w, nil
}
