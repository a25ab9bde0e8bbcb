package scanner

import (
	"fmt"

	"github.com/reactbabylon/fibergen/internal/codegen/meta"
	"github.com/reactbabylon/fibergen/internal/codegen/surface"
)

// ExtractParameters converts declared parameters into generated parameters.
//
// A parameter whose type is not a reference into namespace and whose symbol
// exposes members is replaced by the list of its members, extracted with the
// same rule. Parameters without a name are skipped and reported as warnings;
// subject names the owner, e.g. "MeshBuilder.CreateDisc".
func ExtractParameters(namespace, subject string, params []surface.ParameterInfo) ([]meta.GeneratedParameter, []meta.Warning) {
	out := make([]meta.GeneratedParameter, 0, len(params))
	var warnings []meta.Warning

	for i, p := range params {
		if p.Name == "" {
			warnings = append(warnings, meta.Warning{
				Code:    meta.WarnUnnamedParameter,
				Subject: subject,
				Message: fmt.Sprintf("parameter #%d of type %q has no name and was skipped", i, p.Type),
			})
			continue
		}

		gp := meta.GeneratedParameter{
			Name:     p.Name,
			Type:     meta.Ref(p.Type),
			Optional: p.Optional,
		}
		if !surface.InNamespace(p.Type, namespace) && len(p.Members) > 0 {
			members, ws := ExtractParameters(namespace, subject+"."+p.Name, p.Members)
			gp.Type = meta.Shape(members...)
			warnings = append(warnings, ws...)
		}
		out = append(out, gp)
	}
	return out, warnings
}
